package criterion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidTree(t *testing.T) {
	tree := NewLogicalAnd(
		NewContentID(1, 2),
		NewLogicalOr(
			NewIsContainer(true),
			NewLogicalNot(NewIsBookmarked(false)),
		),
		NewCustomField("price_i", BETWEEN, 10, 20),
		&MatchAll{},
	)

	require.NoError(t, Validate(tree))
}

func TestValidate_DefaultOperatorIsIN(t *testing.T) {
	c := &ContentID{Value: []int64{1, 2, 3}}
	assert.NoError(t, Validate(c))
}

func TestValidate_Problems(t *testing.T) {
	testCases := []struct {
		name     string
		tree     Criterion
		contains string
	}{
		{
			name:     "nil root",
			tree:     nil,
			contains: "$: nil criterion",
		},
		{
			name:     "empty and",
			tree:     NewLogicalAnd(),
			contains: "$.and: requires at least one criterion",
		},
		{
			name:     "empty or nested",
			tree:     NewLogicalAnd(NewLogicalOr()),
			contains: "$.and[0].or: requires at least one criterion",
		},
		{
			name:     "not without child",
			tree:     &LogicalNot{},
			contains: "$.not: requires exactly one criterion",
		},
		{
			name:     "eq with two ids",
			tree:     &LocationID{Operator: EQ, Value: []int64{1, 2}},
			contains: "$(LocationID): EQ requires exactly one value, got 2",
		},
		{
			name:     "in without ids",
			tree:     &SectionID{Operator: IN},
			contains: "$(SectionID): IN requires at least one value",
		},
		{
			name:     "range on ids",
			tree:     &ContentID{Operator: GT, Value: []int64{1}},
			contains: `$(ContentID): unsupported operator ">"`,
		},
		{
			name:     "container without value",
			tree:     &IsContainer{Operator: EQ},
			contains: "$(IsContainer): expected a single-element value, got 0 elements",
		},
		{
			name:     "bookmarked with IN",
			tree:     &IsBookmarked{Operator: IN, Value: []bool{true}},
			contains: `$(IsBookmarked): unsupported operator "in"`,
		},
		{
			name:     "custom field without name",
			tree:     NewCustomField("", EQ, "a"),
			contains: "$(CustomField): field name is required",
		},
		{
			name:     "between with one bound",
			tree:     NewCustomField("price_i", BETWEEN, 1),
			contains: "BETWEEN requires exactly two values, got 1",
		},
		{
			name:     "custom field like",
			tree:     NewCustomField("name_s", LIKE, "foo*"),
			contains: `unsupported operator "like"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.tree)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	tree := NewLogicalAnd(
		NewLogicalOr(),
		&IsContainer{Operator: EQ},
	)

	err := Validate(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.and[0].or")
	assert.Contains(t, err.Error(), "$.and[1](IsContainer)")
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "ContentID", TypeName(NewContentID(1)))
	assert.Equal(t, "LogicalNot", TypeName(NewLogicalNot(&MatchAll{})))
	assert.Equal(t, "<nil>", TypeName(nil))
}

func TestOperator_OrIN(t *testing.T) {
	assert.Equal(t, IN, OperatorUnspecified.OrIN())
	assert.Equal(t, EQ, EQ.OrIN())
}

func TestIDs(t *testing.T) {
	op, ids, ok := IDs(&ParentLocationID{Operator: EQ, Value: []int64{2}})
	require.True(t, ok)
	assert.Equal(t, EQ, op)
	assert.Equal(t, []int64{2}, ids)

	_, _, ok = IDs(NewIsContainer(true))
	assert.False(t, ok)
}
