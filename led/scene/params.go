package scene

// Params is the typed view of one scene layer's parameter bag. JSON
// numbers land in Num, strings in Str, and booleans in Flag.
type Params struct {
	Num  map[string]float64
	Str  map[string]string
	Flag map[string]bool
}

// Float returns the numeric parameter name, or def when absent.
func (p Params) Float(name string, def float64) float64 {
	if v, ok := p.Num[name]; ok {
		return v
	}
	return def
}

// Int returns the numeric parameter name truncated to int, or def.
func (p Params) Int(name string, def int) int {
	if v, ok := p.Num[name]; ok {
		return int(v)
	}
	return def
}

// String returns the string parameter name, or def.
func (p Params) String(name string, def string) string {
	if v, ok := p.Str[name]; ok {
		return v
	}
	return def
}

// Bool returns the boolean parameter name, or def.
func (p Params) Bool(name string, def bool) bool {
	if v, ok := p.Flag[name]; ok {
		return v
	}
	return def
}

// Has reports whether a numeric parameter name was supplied.
func (p Params) Has(name string) bool {
	_, ok := p.Num[name]
	return ok
}

func parseParams(raw map[string]any) Params {
	p := Params{
		Num:  map[string]float64{},
		Str:  map[string]string{},
		Flag: map[string]bool{},
	}
	for key, value := range raw {
		switch v := value.(type) {
		case float64:
			p.Num[key] = v
		case string:
			p.Str[key] = v
		case bool:
			p.Flag[key] = v
		}
	}
	return p
}
