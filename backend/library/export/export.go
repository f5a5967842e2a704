// Package export holds the four stateless encoders that turn a sequence of
// PCB records into a downloadable payload. Each encoder is a pure function
// over the record slice; none of them touches the store.
package export

import (
	"fmt"

	"pcb-research/backend/model"
)

// Format names one of the supported export payload formats.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatPDF  Format = "pdf"
)

// Payload is an encoded export ready to be served as a file download.
type Payload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Encode dispatches to the encoder for the requested format. Download
// filenames follow the original tool's fixed pcb_results.<ext> naming.
func Encode(format Format, records []model.PCBRecord) (*Payload, error) {
	switch format {
	case FormatCSV:
		data, err := ToCSV(records)
		if err != nil {
			return nil, err
		}
		return &Payload{Data: data, ContentType: "text/csv", Filename: "pcb_results.csv"}, nil
	case FormatJSON:
		data, err := ToJSON(records)
		if err != nil {
			return nil, err
		}
		return &Payload{Data: data, ContentType: "application/json", Filename: "pcb_results.json"}, nil
	case FormatXML:
		data, err := ToXML(records)
		if err != nil {
			return nil, err
		}
		return &Payload{Data: data, ContentType: "application/xml", Filename: "pcb_results.xml"}, nil
	case FormatPDF:
		data, err := ToPDF(records)
		if err != nil {
			return nil, err
		}
		return &Payload{Data: data, ContentType: "application/pdf", Filename: "pcb_results.pdf"}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
