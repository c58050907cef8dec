package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into an in-memory registry
// that stores the code, name, and minor-unit scale of each currency.
// Comparing two Currency values with == compares currency identity in O(1)
// without touching the registry. The registry is read through immutable
// snapshots, so concurrent readers never contend.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as the mapping
// between index and a particular currency may change between processes that
// register different custom currencies.
type Currency uint16

// ErrUnknownCurrency indicates that a code is absent from the currency
// registry. It is never silently defaulted; callers must handle it.
var ErrUnknownCurrency = errors.New("unknown currency")

var errDuplicateCurrency = errors.New("currency already registered")

// maxCurrScale bounds the minor-unit scale accepted by [RegisterCurr].
const maxCurrScale = 30

// currencyInfo is the descriptor of a single currency.
type currencyInfo struct {
	code  string
	name  string
	scale int
}

// currencyTable is an immutable snapshot of the currency registry.
// Lookups load the current snapshot without locking; registration builds
// a new snapshot under registerMu and installs it atomically.
type currencyTable struct {
	info   []currencyInfo
	byCode map[string]Currency
}

var (
	registerMu sync.Mutex
	currencies atomic.Pointer[currencyTable]
)

func init() {
	t := &currencyTable{
		info:   isoCurrencies,
		byCode: make(map[string]Currency, len(isoCurrencies)),
	}
	for i, ci := range t.info {
		t.byCode[ci.code] = Currency(i)
	}
	currencies.Store(t)
}

func currTable() *currencyTable {
	return currencies.Load()
}

// ParseCurr converts a 3-letter code to a currency.
// The match is case-insensitive, so "USD" and "usd" resolve to the same
// currency. ParseCurr returns [ErrUnknownCurrency] if the code is absent
// from the registry.
func ParseCurr(curr string) (Currency, error) {
	t := currTable()
	if c, ok := t.byCode[curr]; ok {
		return c, nil
	}
	if c, ok := t.byCode[strings.ToUpper(curr)]; ok {
		return c, nil
	}
	return XXX, ErrUnknownCurrency
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// RegisterCurr adds a custom, non-ISO currency to the registry and returns
// its handle. The code must be 3 ASCII letters and must not already be
// registered; it is stored uppercase. The scale must be between 0 and 30.
//
// Register custom currencies during program initialization, before any
// amounts referencing them are constructed. Once an amount has been bound
// to a code, the scale of that code must not change; the registry enforces
// this by rejecting duplicate codes.
func RegisterCurr(code, name string, scale int) (Currency, error) {
	code = strings.ToUpper(code)
	if !validCurrCode(code) {
		return XXX, fmt.Errorf("registering %q: invalid currency code", code)
	}
	if scale < 0 || scale > maxCurrScale {
		return XXX, fmt.Errorf("registering %q: invalid scale %v", code, scale)
	}

	registerMu.Lock()
	defer registerMu.Unlock()

	old := currTable()
	if _, ok := old.byCode[code]; ok {
		return XXX, fmt.Errorf("registering %q: %w", code, errDuplicateCurrency)
	}

	t := &currencyTable{
		info:   make([]currencyInfo, len(old.info), len(old.info)+1),
		byCode: make(map[string]Currency, len(old.byCode)+1),
	}
	copy(t.info, old.info)
	t.info = append(t.info, currencyInfo{code: code, name: name, scale: scale})
	for k, v := range old.byCode {
		t.byCode[k] = v
	}
	c := Currency(len(t.info) - 1)
	t.byCode[code] = c
	currencies.Store(t)
	return c, nil
}

func validCurrCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// descriptor resolves the currency against the current registry snapshot.
// Out-of-range values, which can only be produced by casting arbitrary
// integers to Currency, resolve to the XXX descriptor.
func (c Currency) descriptor() currencyInfo {
	t := currTable()
	if int(c) >= len(t.info) {
		return t.info[XXX]
	}
	return t.info[c]
}

func (c Currency) valid() bool {
	return int(c) < len(currTable().info)
}

// Code returns the 3-letter code of the currency.
// For ISO currencies this is the code assigned by the ISO 4217 standard;
// for custom currencies it is the code passed to [RegisterCurr].
// This method always returns a valid code.
func (c Currency) Code() string {
	return c.descriptor().code
}

// Name returns the human-readable display name of the currency.
func (c Currency) Name() string {
	return c.descriptor().name
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of the currency:
//   - a scale of 0 indicates currencies without minor units,
//     for example the Japanese Yen;
//   - a scale of 2 indicates currencies whose minor unit is one hundredth
//     of the major unit, for example the US Dollar and its cent;
//   - a scale of 3 indicates currencies whose minor unit is one thousandth
//     of the major unit, for example the Omani Rial and its baisa.
//
// Custom currencies registered via [RegisterCurr] may use larger scales.
func (c Currency) Scale() int {
	return c.descriptor().scale
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T", XXX, NullCurrency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
