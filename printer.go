package langtour

import (
	"fmt"
	"io"
)

// Printer writes section output. The first write error is kept and every
// later write becomes a no-op, so steps never check errors themselves.
type Printer struct {
	w       io.Writer
	section SectionID
	err     error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints the numbered section heading, e.g. "3. Type annotations:".
func (p *Printer) Header(format string, args ...any) {
	p.Printf("%d. "+format+"\n", append([]any{int(p.section)}, args...)...)
}

func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *Printer) Print(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprint(p.w, args...)
}

func (p *Printer) Err() error {
	return p.err
}
