package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereClauseToCondition(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		w := &WhereClause{Column: "slug", Operator: "=", Value: "rolex"}
		cond, args := w.toCondition()
		assert.Equal(t, "slug = ?", cond)
		require.Len(t, args, 1)
		assert.Equal(t, "rolex", args[0])
	})

	t.Run("null checks carry no args", func(t *testing.T) {
		w := &WhereClause{Column: "parent_id", Operator: "IS NULL"}
		cond, args := w.toCondition()
		assert.Equal(t, "parent_id IS NULL", cond)
		assert.Nil(t, args)

		w = &WhereClause{Column: "deleted_at", Operator: "IS NOT NULL"}
		cond, _ = w.toCondition()
		assert.Equal(t, "deleted_at IS NOT NULL", cond)
	})

	t.Run("in expands through bun", func(t *testing.T) {
		w := &WhereClause{Column: "status", Operator: "IN", Value: []any{"draft", "published"}}
		cond, args := w.toCondition()
		assert.Equal(t, "status IN (?)", cond)
		require.Len(t, args, 1)
	})

	t.Run("pattern operators keep their argument", func(t *testing.T) {
		w := &WhereClause{Column: "name", Operator: "ILIKE", Value: "%rolex%"}
		cond, args := w.toCondition()
		assert.Equal(t, "name ILIKE ?", cond)
		require.Len(t, args, 1)
		assert.Equal(t, "%rolex%", args[0])
	})
}

func TestQueryBuilderAccumulatesClauses(t *testing.T) {
	qb := Query[struct{}](nil).
		Table("products").
		Select("id", "name").
		Where("is_active", true).
		WhereOp("price", ">=", 1000).
		WhereNull("parent_id").
		WhereNotNull("brand_id").
		WhereILike("name", "%bag%").
		WhereLike("slug", "blue-%").
		OrderBy("created_at", DESC).
		Limit(10).
		Offset(20)

	assert.Equal(t, "products", qb.tableName)
	assert.Equal(t, []string{"id", "name"}, qb.selectCols)
	assert.Len(t, qb.wheres, 6)
	assert.Len(t, qb.orders, 1)
	require.NotNil(t, qb.limitVal)
	assert.Equal(t, 10, *qb.limitVal)
	require.NotNil(t, qb.offsetVal)
	assert.Equal(t, 20, *qb.offsetVal)
	assert.Equal(t, "=", qb.wheres[0].Operator)
	assert.Equal(t, ">=", qb.wheres[1].Operator)
	assert.Equal(t, "IS NULL", qb.wheres[2].Operator)
	assert.Equal(t, "IS NOT NULL", qb.wheres[3].Operator)
	assert.Equal(t, "ILIKE", qb.wheres[4].Operator)
	assert.Equal(t, "LIKE", qb.wheres[5].Operator)
}
