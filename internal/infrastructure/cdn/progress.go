package cdn

import (
	"io"

	"mediavault/internal/domain/repository/transport"
)

// progressReader reports upload progress as whole percentages while the
// body is consumed. Percentages never decrease; duplicates are skipped.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	last   int
	report transport.ProgressFunc
}

func newProgressReader(r io.Reader, total int64, report transport.ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, last: -1, report: report}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 && p.total > 0 && p.report != nil {
		p.sent += int64(n)

		percent := int(p.sent * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent > p.last {
			p.last = percent
			p.report(percent)
		}
	}

	return n, err
}
