package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"kabaddibot/internal/domain"
)

func parseCSV(data []byte) (*Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv dataset: %w", err)
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}
	entries := make([]domain.QAEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, domain.QAEntry{
			Question: strings.TrimSpace(rec[0]),
			Answer:   strings.TrimSpace(rec[1]),
		})
	}
	return New(entries)
}

func isHeader(rec []string) bool {
	return strings.EqualFold(strings.TrimSpace(rec[0]), "question") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "answer")
}

func parseYAML(data []byte) (*Dataset, error) {
	var rows []struct {
		Question string `yaml:"question"`
		Answer   string `yaml:"answer"`
	}
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse yaml dataset: %w", err)
	}
	entries := make([]domain.QAEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.QAEntry{
			Question: strings.TrimSpace(row.Question),
			Answer:   strings.TrimSpace(row.Answer),
		})
	}
	return New(entries)
}
