package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// csvColumns is the process CSV layout, in column order.
var csvColumns = []string{"pid", "arrival_time", "priority", "burst_time"}

// ReadCSV parses process descriptors from r. A first row whose first cell is
// "pid" is treated as a header and skipped. Malformed rows fail with
// sim.ErrInvalidDescriptor; range checks are left to sim.ValidateBatch.
func ReadCSV(r io.Reader) ([]sim.ProcessDescriptor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var batch []sim.ProcessDescriptor
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), csvColumns[0]) {
			continue
		}
		d, err := parseProcessRow(row)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", line, err)
		}
		batch = append(batch, d)
	}
	return batch, nil
}

func parseProcessRow(row []string) (sim.ProcessDescriptor, error) {
	if len(row) != len(csvColumns) {
		return sim.ProcessDescriptor{}, fmt.Errorf("%w: %d columns, expected %d (%s)",
			sim.ErrInvalidDescriptor, len(row), len(csvColumns), strings.Join(csvColumns, ","))
	}
	var vals [4]int64
	for i, cell := range row {
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return sim.ProcessDescriptor{}, fmt.Errorf("%w: %s %q is not an integer",
				sim.ErrInvalidDescriptor, csvColumns[i], cell)
		}
		vals[i] = v
	}
	return sim.ProcessDescriptor{PID: vals[0], ArrivalTime: vals[1], Priority: vals[2], BurstTime: vals[3]}, nil
}

// LoadCSV reads process descriptors from a CSV file.
func LoadCSV(path string) ([]sim.ProcessDescriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process CSV: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// WriteCSV writes batch with a header row.
func WriteCSV(w io.Writer, batch []sim.ProcessDescriptor) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, d := range batch {
		row := []string{
			strconv.FormatInt(d.PID, 10),
			strconv.FormatInt(d.ArrivalTime, 10),
			strconv.FormatInt(d.Priority, 10),
			strconv.FormatInt(d.BurstTime, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for pid %d: %w", d.PID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportCSV writes batch to a CSV file at path.
func ExportCSV(path string, batch []sim.ProcessDescriptor) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating process CSV: %w", err)
	}
	if err := WriteCSV(file, batch); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
