package export

import (
	"encoding/xml"
	"fmt"

	"pcb-research/backend/model"
)

// XMLDatabase mirrors the <PCBDatabase> document: one <PCB> child per record,
// scalar fields as same-named elements, use cases nested as <case> children.
type XMLDatabase struct {
	XMLName xml.Name    `xml:"PCBDatabase"`
	Records []XMLRecord `xml:"PCB"`
}

type XMLRecord struct {
	FormFactor        string      `xml:"form_factor"`
	ModelNumber       string      `xml:"model_number"`
	Make              string      `xml:"make"`
	Model             string      `xml:"model"`
	UseCases          XMLUseCases `xml:"use_cases"`
	Purpose           string      `xml:"purpose"`
	MarketUse         string      `xml:"market_use"`
	AgeInMarket       int         `xml:"age_in_market"`
	CompetingProducts string      `xml:"competing_products"`
	EntryDate         string      `xml:"entry_date"`
}

type XMLUseCases struct {
	Cases []string `xml:"case"`
}

// ToXML encodes the records as an indented <PCBDatabase> document. An empty
// input yields an empty root element.
func ToXML(records []model.PCBRecord) ([]byte, error) {
	doc := XMLDatabase{Records: make([]XMLRecord, 0, len(records))}
	for i := range records {
		doc.Records = append(doc.Records, XMLRecord{
			FormFactor:        records[i].FormFactor,
			ModelNumber:       records[i].ModelNumber,
			Make:              records[i].Make,
			Model:             records[i].Model,
			UseCases:          XMLUseCases{Cases: records[i].UseCases},
			Purpose:           records[i].Purpose,
			MarketUse:         records[i].MarketUse,
			AgeInMarket:       records[i].AgeInMarket,
			CompetingProducts: records[i].CompetingProducts,
			EntryDate:         records[i].EntryDate,
		})
	}

	data, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode xml export: %w", err)
	}
	return data, nil
}

// FromXML decodes a ToXML payload back into records. The search view never
// imports XML; this exists for fidelity checks.
func FromXML(data []byte) ([]model.PCBRecord, error) {
	var doc XMLDatabase
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode xml export: %w", err)
	}
	records := make([]model.PCBRecord, 0, len(doc.Records))
	for i := range doc.Records {
		records = append(records, model.PCBRecord{
			FormFactor:        doc.Records[i].FormFactor,
			ModelNumber:       doc.Records[i].ModelNumber,
			Make:              doc.Records[i].Make,
			Model:             doc.Records[i].Model,
			UseCases:          doc.Records[i].UseCases.Cases,
			Purpose:           doc.Records[i].Purpose,
			MarketUse:         doc.Records[i].MarketUse,
			AgeInMarket:       doc.Records[i].AgeInMarket,
			CompetingProducts: doc.Records[i].CompetingProducts,
			EntryDate:         doc.Records[i].EntryDate,
		})
	}
	return records, nil
}
