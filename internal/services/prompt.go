package services

// baseAnalysisPrompt is the fixed resume-review rubric sent with every
// analysis request.
const baseAnalysisPrompt = `
You are an expert resume reviewer with 15+ years of HR experience at top tech companies. 
Analyze this resume comprehensively and provide detailed feedback in the following structure:

### 🔍 Resume Overview
- Format assessment (ATS compatibility)
- Document structure evaluation
- First impressions summary

### 📊 Section-by-Section Analysis
For each detected section (Education, Experience, Skills, etc.):
1. **Rating**: /10 with justification
2. **Strengths**: Bullet points
3. **Improvements**: Actionable suggestions
4. **Keywords**: Missing industry terms

### 🎯 Targeted Recommendations
- Top 3 priority improvements
- Skills/experiences to highlight
- Redundant content to remove

### 💯 Overall Score: /100
With detailed breakdown:
- Content (40%)
- Structure (30%)
- Impact (20%)
- ATS Optimization (10%)

### ✨ Enhancement Suggestions
- Power verbs to incorporate
- Quantifiable achievements to add
- Modern formatting tips

Format your response in beautiful Markdown with emojis for visual scanning.
`

const jobDescriptionSuffix = "\n\nAdditionally, optimize this resume for the following job description:\n"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt returns the fixed rubric, with the job-targeting
// instruction appended when a job description was supplied.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(jobDescription string) string {
	if jobDescription == "" {
		return baseAnalysisPrompt
	}
	return baseAnalysisPrompt + jobDescriptionSuffix + jobDescription
}
