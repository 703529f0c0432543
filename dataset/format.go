package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpuputti/spamham/pkg/errors"
)

// nanToken is the label text of an unlabeled datum.
const nanToken = "nan"

// ParseLabel parses the label column: "1" spam, "0" ham, "nan" unlabeled.
func ParseLabel(tok string) (Label, bool) {
	switch strings.ToLower(tok) {
	case "1":
		return Spam, true
	case "0":
		return Ham, true
	case nanToken:
		return Unlabeled, true
	default:
		return Unlabeled, false
	}
}

// Read parses whitespace separated records, one datum per line:
// id, label, then the feature values. Blank lines are skipped.
// The result is validated with New.
func Read(r io.Reader) (*Dataset, error) {
	var data []Datum

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		d, err := parseDatum(lineNo, fields)
		if err != nil {
			return nil, err
		}
		data = append(data, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read records")
	}

	return New(data)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return ds, nil
}

func parseDatum(lineNo int, fields []string) (Datum, error) {
	if len(fields) < 2 {
		return Datum{}, errors.NewParseError(lineNo, "", "expected at least id and label")
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 {
		return Datum{}, errors.NewParseError(lineNo, fields[0], "invalid id")
	}

	label, ok := ParseLabel(fields[1])
	if !ok {
		return Datum{}, errors.NewParseError(lineNo, fields[1], "invalid label")
	}

	features := make([]int, len(fields)-2)
	for i, tok := range fields[2:] {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Datum{}, errors.NewParseError(lineNo, tok, "invalid feature value")
		}
		features[i] = v
	}

	return Datum{ID: id, Label: label, Features: features}, nil
}

// ReadRecords parses the two-column "id label" form. Extra columns are
// ignored so a full data file can serve as the labeled side of a
// comparison.
func ReadRecords(r io.Reader) ([]Record, error) {
	var recs []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, errors.NewParseError(lineNo, "", "expected id and label")
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 0 {
			return nil, errors.NewParseError(lineNo, fields[0], "invalid id")
		}
		label, ok := ParseLabel(fields[1])
		if !ok {
			return nil, errors.NewParseError(lineNo, fields[1], "invalid label")
		}
		recs = append(recs, Record{ID: id, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	return recs, nil
}

// ReadRecordsFile opens path and parses it with ReadRecords.
func ReadRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return recs, nil
}

// WriteRecords writes one "id label" line per record.
func WriteRecords(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if _, err := fmt.Fprintf(bw, "%d %s\n", rec.ID, rec.Label); err != nil {
			return errors.Wrap(err, "write records")
		}
	}
	return errors.Wrap(bw.Flush(), "flush records")
}

// WriteRecordsFile creates path and writes recs to it.
func WriteRecordsFile(path string, recs []Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return WriteRecords(f, recs)
}
