package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentImage ContentKind = "image"
)

// ResumeContent is the tagged variant the analyzer feeds to the model: either
// extracted text or a normalized image, never both.
type ResumeContent struct {
	Kind      ContentKind
	Text      string
	ImageData []byte
	ImageMIME string
}

type ExtractorService interface {
	Extract(path, fileType string) (*ResumeContent, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// Extract dispatches once on the detected file type and converts the file
// into model-consumable content.
func (e *extractorService) Extract(path, fileType string) (*ResumeContent, error) {
	switch fileType {
	case "pdf":
		text, err := e.extractPDFText(path)
		if err != nil {
			return nil, err
		}
		return &ResumeContent{Kind: ContentText, Text: text}, nil
	case "docx":
		text, err := e.extractDocxText(path)
		if err != nil {
			return nil, err
		}
		return &ResumeContent{Kind: ContentText, Text: text}, nil
	case "jpg", "jpeg", "png":
		data, err := e.normalizeImage(path)
		if err != nil {
			return nil, err
		}
		return &ResumeContent{Kind: ContentImage, ImageData: data, ImageMIME: "image/jpeg"}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}

// extractPDFText joins the visible text of every page with newlines. A
// scanned PDF with no text layer yields an empty string, not an error.
func (e *extractorService) extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		// GetPlainText prefixes the page text with a newline; drop it so
		// pages join cleanly.
		pages = append(pages, strings.TrimPrefix(text, "\n"))
	}

	return strings.Join(pages, "\n"), nil
}

// extractDocxText joins the document's paragraph texts with newlines.
// Paragraphs inside tables are skipped; headers and footers live outside
// document.xml and are not read.
func (e *extractorService) extractDocxText(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	return parseDocxParagraphs(r.Editable().GetContent())
}

func parseDocxParagraphs(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	tableDepth := 0
	inParagraph := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX content: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					current.Reset()
				}
			case "t":
				if inParagraph {
					inText = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if tableDepth == 0 && inParagraph {
					paragraphs = append(paragraphs, current.String())
					inParagraph = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// normalizeImage decodes the uploaded image and re-encodes it as RGB JPEG so
// the model always receives one color model regardless of the source format.
func (e *extractorService) normalizeImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
