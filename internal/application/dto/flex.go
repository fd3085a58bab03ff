package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexString acepta una cadena JSON o cualquier otro valor escalar, que se
// convierte a su texto JSON (5 -> "5", true -> "true"). null -> "".
type FlexString string

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

// FlexInt acepta un número JSON entero o una cadena numérica. Cualquier otro valor vale 0.
type FlexInt int

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = 0
	raw := strings.TrimSpace(string(b))
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		raw = strings.TrimSpace(s)
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt(n)
	}
	return nil
}

// FlexDecimal acepta un número JSON o una cadena numérica. Cualquier otro valor vale 0.
type FlexDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON implementa json.Unmarshaler.
func (f *FlexDecimal) UnmarshalJSON(b []byte) error {
	f.Decimal = decimal.Zero
	raw := strings.TrimSpace(string(b))
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		raw = strings.TrimSpace(s)
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		f.Decimal = d
	}
	return nil
}
