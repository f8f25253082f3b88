package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/phrazzld/kdc-shelver/internal/domain/shelving"
)

// CompareCmd compares book A with book B.
type CompareCmd struct {
	A string `arg:"" optional:"" help:"Book A label, e.g. '813.6 김294ㄱ v.1' or '813.6|김294ㄱ|v.1'"`
	B string `arg:"" optional:"" help:"Book B label"`

	AClass  string `name:"a-class" help:"Book A classification (overrides the label)"`
	AAuthor string `name:"a-author" help:"Book A author code (overrides the label)"`
	AVol    string `name:"a-vol" help:"Book A volume/copy designator (overrides the label)"`
	BClass  string `name:"b-class" help:"Book B classification (overrides the label)"`
	BAuthor string `name:"b-author" help:"Book B author code (overrides the label)"`
	BVol    string `name:"b-vol" help:"Book B volume/copy designator (overrides the label)"`

	JSON bool `name:"json" help:"Print the verdict as JSON"`
}

type compareOutput struct {
	A       domain.CallNumber `json:"a"`
	B       domain.CallNumber `json:"b"`
	Verdict shelving.Verdict  `json:"verdict"`
}

// books builds both call numbers from the labels and field flags.
func (c *CompareCmd) books() (domain.CallNumber, domain.CallNumber) {
	return override(domain.ParseCallNumber(c.A), c.AClass, c.AAuthor, c.AVol),
		override(domain.ParseCallNumber(c.B), c.BClass, c.BAuthor, c.BVol)
}

func override(cn domain.CallNumber, class, author, vol string) domain.CallNumber {
	if class != "" {
		cn = cn.WithClass(class)
	}
	if author != "" {
		cn = cn.WithAuthor(author)
	}
	if vol != "" {
		cn = cn.WithVol(vol)
	}
	return cn
}

func (c *CompareCmd) Run(rt *runtime) error {
	a, b := c.books()

	v, err := rt.shelving.Judge(a, b)
	if err != nil {
		if errors.Is(err, domain.ErrBlankComparison) {
			return fmt.Errorf("비교할 책의 정보를 하나 이상 입력해주세요: %w", err)
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(rt.out)
		enc.SetIndent("", "  ")
		return enc.Encode(compareOutput{A: a, B: b, Verdict: v})
	}

	_, err = fmt.Fprintf(rt.out, "A: %s\nB: %s\n\n%s\n%s\n", display(a), display(b), v.Message, v.Reason)
	return err
}

// display renders a call number for terminal output.
func display(cn domain.CallNumber) string {
	if cn.IsBlank() {
		return "(빈 청구기호)"
	}
	return cn.String()
}
