package utils

import "time"

// ParseDate aceita tanto datas simples ("2006-01-02") quanto timestamps
// RFC3339, o formato que o frontend envia no corpo de /produtoComprado
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			incomingDate, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				return nil, err
			}
		}

		date = incomingDate
	}

	return &date, nil
}
