package models

// AnalysisSettings carries the sidebar settings for a single interaction.
// Only JobDescription feeds the composed prompt; depth, the two toggles and
// the job title are collected by the UI but intentionally unused downstream,
// matching the observed product behavior.
type AnalysisSettings struct {
	AnalysisDepth  string `json:"analysis_depth" form:"analysis_depth"`
	ATSCheck       bool   `json:"ats_check" form:"ats_check"`
	BiasCheck      bool   `json:"bias_check" form:"bias_check"`
	JobTitle       string `json:"job_title" form:"job_title"`
	JobDescription string `json:"job_description" form:"job_description"`
}

type AnalysisReport struct {
	FileName     string `json:"file_name"`
	DetectedType string `json:"detected_type"`
	Analysis     string `json:"analysis"`
}

type ReportRequest struct {
	Analysis string `json:"analysis"`
}
