package journal

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/papertrade/internal/id"
)

// record returns the fixed-order flat-file fields for an entry:
// RFC3339 time, side, symbol, quantity, price per share, total.
func (e Entry) record() []string {
	return []string{
		e.Time.Format(time.RFC3339),
		string(e.Side),
		e.Symbol,
		strconv.Itoa(e.Qty),
		strconv.FormatFloat(e.Price, 'f', -1, 64),
		strconv.FormatFloat(e.Total, 'f', 2, 64),
	}
}

// parseRecord rebuilds an entry from flat-file fields. The id is freshly
// assigned; it is not persisted in the flat file.
func parseRecord(fields []string) (Entry, error) {
	if len(fields) < 6 {
		return Entry{}, fmt.Errorf("ledger record: want 6 fields, got %d", len(fields))
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[0]))
	if err != nil {
		return Entry{}, fmt.Errorf("ledger record time: %w", err)
	}
	side := Side(strings.TrimSpace(fields[1]))
	if side != Buy && side != Sell {
		return Entry{}, fmt.Errorf("ledger record side: %q", fields[1])
	}
	qty, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return Entry{}, fmt.Errorf("ledger record qty: %w", err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("ledger record price: %w", err)
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("ledger record total: %w", err)
	}
	return Entry{
		ID:     id.New(),
		Time:   ts,
		Side:   side,
		Symbol: strings.TrimSpace(fields[2]),
		Qty:    qty,
		Price:  price,
		Total:  total,
	}, nil
}

// WriteFile writes the ledger to path, one entry per line, oldest first.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	for _, e := range entries {
		if err := w.Write(e.record()); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile loads a ledger file. A missing file is an empty ledger, and
// lines that fail to parse are skipped rather than aborting the load.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := parseRecord(strings.Split(line, ","))
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
