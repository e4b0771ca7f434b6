package outline

import "github.com/mboyd1/asanagen/internal/ingest"

// Survey summarizes how a document's styles map onto the four roles.
// Useful for diagnosing documents whose products section is not found.
type Survey struct {
	Paragraphs    int `json:"paragraphs"`
	Sections      int `json:"sections"`
	ProductTypes  int `json:"product_types"`
	Manufacturers int `json:"manufacturers"`
	Descriptions  int `json:"descriptions"`
}

// Survey counts paragraphs per matched role. A paragraph counts toward
// the first role it matches, in role order.
func (e *Extractor) Survey(paragraphs []ingest.Paragraph) Survey {
	s := Survey{Paragraphs: len(paragraphs)}
	for _, para := range paragraphs {
		switch {
		case e.rules.Section.MatchesStyle(para.Style):
			s.Sections++
		case e.rules.ProductType.MatchesStyle(para.Style):
			s.ProductTypes++
		case e.rules.Manufacturer.MatchesStyle(para.Style):
			s.Manufacturers++
		case e.rules.Description.MatchesStyle(para.Style):
			s.Descriptions++
		}
	}
	return s
}
