package chatbot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"
)

// ReadSourceTable parses a CSV export of the ingestion sheet. The header
// must contain STT, DATA and Link columns (case-insensitive, any
// order); rows with empty DATA are dropped.
func ReadSourceTable(r io.Reader) ([]entity.SourceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	sttCol, dataCol, linkCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "stt":
			sttCol = i
		case "data":
			dataCol = i
		case "link":
			linkCol = i
		}
	}
	if dataCol < 0 {
		return nil, fmt.Errorf("missing DATA column in header %v", header)
	}

	var rows []entity.SourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := entity.SourceRow{}
		if sttCol >= 0 && sttCol < len(record) {
			row.STT, _ = strconv.Atoi(strings.TrimSpace(record[sttCol]))
		}
		if dataCol < len(record) {
			row.Data = strings.TrimSpace(record[dataCol])
		}
		if linkCol >= 0 && linkCol < len(record) {
			row.Link = strings.TrimSpace(record[linkCol])
		}

		if row.Data == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
