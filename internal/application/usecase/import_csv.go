package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
)

var bomPrefix = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV decodifica el CSV de intercambio en filas de import. Las filas con
// errores de formato no abortan el parseo: se devuelven aparte para que el
// lote continúe con las válidas.
//
// Columnas esperadas: Name, Kategorie, Verknüpfte Produkte, Aktuelles
// Volumen, Kritischer Wert. La columna Status del export se ignora (es
// derivada). La cabecera es opcional y se detecta por la primera celda.
func ParseCSV(data []byte) ([]ImportRow, []dto.ImportRowError) {
	data = bytes.TrimPrefix(data, bomPrefix)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows []ImportRow
	var failed []dto.ImportRowError
	line := 0
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			line++
			failed = append(failed, dto.ImportRowError{Row: line, Message: err.Error()})
			continue
		}
		line++
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}
		if isBlankRecord(record) {
			continue
		}

		row, err := parseImportRecord(record)
		if err != nil {
			name := ""
			if len(record) > 0 {
				name = record[0]
			}
			failed = append(failed, dto.ImportRowError{Row: line, Name: name, Message: err.Error()})
			continue
		}
		rows = append(rows, row)
	}
	return rows, failed
}

func parseImportRecord(record []string) (ImportRow, error) {
	if len(record) < 5 {
		return ImportRow{}, fmt.Errorf("se esperaban 5 columnas, hay %d", len(record))
	}
	volume, err := parseGermanDecimal(record[3])
	if err != nil {
		return ImportRow{}, fmt.Errorf("volumen inválido %q", record[3])
	}
	threshold, err := parseGermanDecimal(record[4])
	if err != nil {
		return ImportRow{}, fmt.Errorf("umbral inválido %q", record[4])
	}
	return ImportRow{
		Name:              strings.TrimSpace(record[0]),
		Category:          strings.TrimSpace(record[1]),
		LinkedProducts:    strings.TrimSpace(record[2]),
		CurrentVolume:     volume,
		CriticalThreshold: threshold,
	}, nil
}

// parseGermanDecimal acepta tanto punto como coma decimal ("1234.5" y
// "1234,5"); los separadores de miles no se soportan.
func parseGermanDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

func isBlankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
