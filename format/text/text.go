// Package text renders decoded datagrams with their text marshaller.
package text

import (
	"encoding"
	"fmt"

	"github.com/nxthdr/sflow-parser/format"
)

type TextDriver struct {
}

func (d *TextDriver) Prepare() error {
	return nil
}

func (d *TextDriver) Init() error {
	return nil
}

func (d *TextDriver) Format(data interface{}) ([]byte, []byte, error) {
	var key []byte
	if dataIf, ok := data.(interface{ Key() []byte }); ok {
		key = dataIf.Key()
	}
	if m, ok := data.(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		return key, text, err
	}
	return key, []byte(fmt.Sprintf("%v", data)), nil
}

func init() {
	d := &TextDriver{}
	format.RegisterFormatDriver("text", d)
}
