package money

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"xxx", XXX},
			{"XXX", XXX},
			{"jpy", JPY},
			{"JPY", JPY},
			{"usd", USD},
			{"Usd", USD},
			{"USD", USD},
			{"omr", OMR},
			{"OMR", OMR},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "840", "test", "$", "AU$", "UUU", "USDT",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
				continue
			}
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("ParseCurr(%q) error = %v, want %v", tt, err, ErrUnknownCurrency)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Identity(t *testing.T) {
	// Independently parsed codes must resolve to the same identity.
	a := MustParseCurr("USD")
	b := MustParseCurr("usd")
	if a != b {
		t.Errorf("MustParseCurr(\"USD\") = %v, MustParseCurr(\"usd\") = %v, want same identity", a, b)
	}
	if a == MustParseCurr("EUR") {
		t.Errorf("MustParseCurr(\"USD\") and MustParseCurr(\"EUR\") have the same identity")
	}
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{XTS, 0},
		{JPY, 0},
		{KRW, 0},
		{AED, 2},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{IQD, 3},
		{BHD, 3},
		{Currency(60000), 0}, // out of range resolves to XXX
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{JPY, "JPY"},
		{USD, "USD"},
		{OMR, "OMR"},
		{Currency(60000), "XXX"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Name(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{USD, "US Dollar"},
		{EUR, "Euro"},
		{JPY, "Yen"},
		{GBP, "Pound Sterling"},
	}
	for _, tt := range tests {
		got := tt.curr.Name()
		if got != tt.want {
			t.Errorf("%v.Name() = %q, want %q", tt.curr, got, tt.want)
		}
	}
}

func TestRegisterCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := RegisterCurr("btc", "Bitcoin", 8)
		if err != nil {
			t.Fatalf("RegisterCurr(\"btc\", \"Bitcoin\", 8) failed: %v", err)
		}
		if got := c.Code(); got != "BTC" {
			t.Errorf("c.Code() = %q, want %q", got, "BTC")
		}
		if got := c.Name(); got != "Bitcoin" {
			t.Errorf("c.Name() = %q, want %q", got, "Bitcoin")
		}
		if got := c.Scale(); got != 8 {
			t.Errorf("c.Scale() = %v, want %v", got, 8)
		}
		got, err := ParseCurr("BTC")
		if err != nil {
			t.Fatalf("ParseCurr(\"BTC\") failed: %v", err)
		}
		if got != c {
			t.Errorf("ParseCurr(\"BTC\") = %v, want %v", got, c)
		}
		// ISO currencies keep their identity after registration.
		if MustParseCurr("USD") != USD {
			t.Errorf("ParseCurr(\"USD\") changed identity after registration")
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			code  string
			name  string
			scale int
		}{
			"empty code":  {"", "Empty", 2},
			"short code":  {"BT", "Short", 2},
			"long code":   {"BTCX", "Long", 2},
			"digit":       {"BT1", "Digit", 2},
			"symbol":      {"BT$", "Symbol", 2},
			"neg scale":   {"NEG", "Negative", -1},
			"huge scale":  {"HUG", "Huge", 31},
			"duplicate 1": {"USD", "Duplicate Dollar", 2},
			"duplicate 2": {"usd", "Duplicate Dollar", 2},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := RegisterCurr(tt.code, tt.name, tt.scale)
				if err == nil {
					t.Errorf("RegisterCurr(%q, %q, %v) did not fail", tt.code, tt.name, tt.scale)
				}
			})
		}
	})
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(USD)
		if err != nil {
			t.Fatalf("json.Marshal(USD) failed: %v", err)
		}
		if string(got) != `"USD"` {
			t.Errorf("json.Marshal(USD) = %s, want %s", got, `"USD"`)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte(`"EUR"`), &c); err != nil {
			t.Fatalf("json.Unmarshal(\"EUR\") failed: %v", err)
		}
		if c != EUR {
			t.Errorf("json.Unmarshal(\"EUR\") = %v, want %v", c, EUR)
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte(`"UUU"`), &c); err == nil {
			t.Errorf("json.Unmarshal(\"UUU\") did not fail")
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	text, err := USD.MarshalText()
	if err != nil {
		t.Fatalf("USD.MarshalText() failed: %v", err)
	}
	if string(text) != "USD" {
		t.Errorf("USD.MarshalText() = %q, want %q", text, "USD")
	}
	var c Currency
	if err := c.UnmarshalText([]byte("omr")); err != nil {
		t.Fatalf("c.UnmarshalText(\"omr\") failed: %v", err)
	}
	if c != OMR {
		t.Errorf("c.UnmarshalText(\"omr\") = %v, want %v", c, OMR)
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []any{"USD", []byte("USD")}
		for _, tt := range tests {
			var c Currency
			if err := c.Scan(tt); err != nil {
				t.Errorf("c.Scan(%v) failed: %v", tt, err)
				continue
			}
			if c != USD {
				t.Errorf("c.Scan(%v) = %v, want %v", tt, c, USD)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 840, 84.0, true}
		for _, tt := range tests {
			var c Currency
			if err := c.Scan(tt); err == nil {
				t.Errorf("c.Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	got, err := OMR.Value()
	if err != nil {
		t.Fatalf("OMR.Value() failed: %v", err)
	}
	if got != "OMR" {
		t.Errorf("OMR.Value() = %v, want %v", got, "OMR")
	}
}

func TestNullCurrency_Scan(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		got := NullCurrency{Currency: USD, Valid: true}
		if err := got.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if got.Valid {
			t.Errorf("Scan(nil) = %v, want invalid", got)
		}
	})

	t.Run("string", func(t *testing.T) {
		got := NullCurrency{}
		if err := got.Scan("JPY"); err != nil {
			t.Fatalf("Scan(\"JPY\") failed: %v", err)
		}
		if !got.Valid || got.Currency != JPY {
			t.Errorf("Scan(\"JPY\") = %v, want valid JPY", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		got := NullCurrency{}
		if err := got.Scan([]byte("UUU")); err == nil {
			t.Errorf("Scan(\"UUU\") did not fail")
		}
	})
}

func TestNullCurrency_JSON(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		var n NullCurrency
		if err := json.Unmarshal([]byte("null"), &n); err != nil {
			t.Fatalf("json.Unmarshal(null) failed: %v", err)
		}
		if n.Valid {
			t.Errorf("json.Unmarshal(null) = %v, want invalid", n)
		}
		got, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(%v) failed: %v", n, err)
		}
		if string(got) != "null" {
			t.Errorf("json.Marshal(%v) = %s, want null", n, got)
		}
	})

	t.Run("currency", func(t *testing.T) {
		var n NullCurrency
		if err := json.Unmarshal([]byte(`"CHF"`), &n); err != nil {
			t.Fatalf("json.Unmarshal(\"CHF\") failed: %v", err)
		}
		if !n.Valid || n.Currency != CHF {
			t.Errorf("json.Unmarshal(\"CHF\") = %v, want valid CHF", n)
		}
	})
}
