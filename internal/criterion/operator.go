package criterion

// Operator is the comparison a leaf criterion applies to its field.
type Operator string

// Supported operators. The zero value means the operator was not given.
const (
	OperatorUnspecified Operator = ""
	EQ                  Operator = "="
	IN                  Operator = "in"
	GT                  Operator = ">"
	GTE                 Operator = ">="
	LT                  Operator = "<"
	LTE                 Operator = "<="
	BETWEEN             Operator = "between"
	LIKE                Operator = "like"
	CONTAINS            Operator = "contains"
)

// operatorNames maps the lower-case names used in query files to operators.
var operatorNames = map[string]Operator{
	"eq":       EQ,
	"=":        EQ,
	"in":       IN,
	"gt":       GT,
	">":        GT,
	"gte":      GTE,
	">=":       GTE,
	"lt":       LT,
	"<":        LT,
	"lte":      LTE,
	"<=":       LTE,
	"between":  BETWEEN,
	"like":     LIKE,
	"contains": CONTAINS,
}

// ParseOperator resolves an operator name such as "eq" or ">=".
func ParseOperator(name string) (Operator, bool) {
	op, ok := operatorNames[name]
	return op, ok
}

// OrIN returns IN when the operator is unspecified, otherwise op itself.
func (op Operator) OrIN() Operator {
	if op == OperatorUnspecified {
		return IN
	}
	return op
}

// IsRange reports whether op is one of the range comparisons.
func (op Operator) IsRange() bool {
	switch op {
	case GT, GTE, LT, LTE, BETWEEN:
		return true
	}
	return false
}
