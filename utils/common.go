// Common package contains the input readers shared by every motif_mark command.
// FASTA, FASTQ and motif files may be plain text or gzipped.
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry with its sequence joined onto a single line.
// Case is kept as written: uppercase marks exons, lowercase introns.
type Record struct {
	Header   string
	Sequence string
}

type FastqRecord struct {
	Header   string
	Sequence string
	Plus     string
	Quality  string
}

var ErrNoRecords = errors.New("no sequence records found")

// gzipReadCloser closes both the gzip stream and the file under it.
type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzipReadCloser) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

// OpenInput opens file, transparently decompressing it when it starts with
// the gzip magic bytes.
func OpenInput(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind %s: %w", file, err)
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipReadCloser{Reader: gr, f: f}, nil
	}
	return f, nil
}

type FastaHandler func(rec Record) error

// StreamFasta calls handler for each record of file in file order. Records
// with no sequence lines are skipped. The first handler error stops the scan.
func StreamFasta(file string, handler FastaHandler) error {
	r, err := OpenInput(file)
	if err != nil {
		return err
	}
	defer r.Close()

	in := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAredundant))
	for {
		s, err := in.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		l, ok := s.(*linear.Seq)
		if !ok || l.Len() == 0 {
			continue
		}
		rec := Record{Header: header(l), Sequence: string(l.Seq)}
		if err := handler(rec); err != nil {
			return fmt.Errorf("handler error (%s): %w", rec.Header, err)
		}
	}
}

func header(l *linear.Seq) string {
	if desc := l.Description(); desc != "" {
		return l.Name() + " " + desc
	}
	return l.Name()
}

// ReadFasta collects every record of file. An input without records is an error.
func ReadFasta(file string) ([]Record, error) {
	var records []Record
	err := StreamFasta(file, func(rec Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrNoRecords)
	}
	return records, nil
}

// ReadMotifs returns the motif literals of file, one per non-blank line, in
// file order.
func ReadMotifs(file string) ([]string, error) {
	r, err := OpenInput(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var motifs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		motifs = append(motifs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	if len(motifs) == 0 {
		return nil, fmt.Errorf("%s: no motifs found", file)
	}
	return motifs, nil
}

// ReadFastq parses four-line FASTQ records. A trailing partial record is
// reported as an error.
func ReadFastq(file string) ([]FastqRecord, error) {
	r, err := OpenInput(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	var records []FastqRecord
	for scanner.Scan() {
		header := scanner.Text()
		if strings.TrimSpace(header) == "" {
			continue
		}
		var lines [3]string
		for i := range lines {
			if !scanner.Scan() {
				return nil, fmt.Errorf("truncated FASTQ record %q", header)
			}
			lines[i] = scanner.Text()
		}
		if !strings.HasPrefix(header, "@") {
			return nil, fmt.Errorf("malformed FASTQ header %q", header)
		}

		records = append(records, FastqRecord{
			Header:   strings.TrimPrefix(header, "@"),
			Sequence: lines[0],
			Plus:     lines[1],
			Quality:  lines[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return records, nil
}
