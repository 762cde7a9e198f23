package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatePartitionsEveryPageOnce(t *testing.T) {
	for _, n := range []int{1, 9, 10, 11, 19, 20, 23, 100} {
		items := numberedQuestions(n)
		pages := (n + DefaultPageSize - 1) / DefaultPageSize

		var collected []int
		for page := 1; page <= pages; page++ {
			got := Paginate(items, page, DefaultPageSize)
			require.NotEmpty(t, got, "n=%d page=%d", n, page)
			assert.LessOrEqual(t, len(got), DefaultPageSize)
			for _, q := range got {
				collected = append(collected, q.ID)
			}
		}

		require.Len(t, collected, n, "n=%d", n)
		for i, id := range collected {
			assert.Equal(t, i+1, id, "n=%d", n)
		}
		assert.Empty(t, Paginate(items, pages+1, DefaultPageSize))
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := numberedQuestions(19)

	assert.Empty(t, Paginate(items, 1000, 10))
	assert.NotNil(t, Paginate(items, 1000, 10))
	assert.Empty(t, Paginate(items, 0, 10))
	assert.Empty(t, Paginate(items, -3, 10))
	assert.Empty(t, Paginate(nil, 1, 10))
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	items := numberedQuestions(25)
	assert.Len(t, Paginate(items, 1, 0), DefaultPageSize)
	assert.Len(t, Paginate(items, 3, -1), 5)
}

func TestPaginateDoesNotAliasInput(t *testing.T) {
	items := numberedQuestions(12)
	page := Paginate(items, 1, 10)
	page[0].Question = "changed"

	assert.Equal(t, "Question number 1?", items[0].Question)
}

func TestSortByIDIsStableCopy(t *testing.T) {
	items := []Question{{ID: 3}, {ID: 1}, {ID: 2}}
	sorted := SortByID(items)

	assert.Equal(t, []int{1, 2, 3}, ids(sorted))
	assert.Equal(t, []int{3, 1, 2}, ids(items))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	items := []Question{
		{ID: 1, Question: "What is the Title?"},
		{ID: 2, Question: "Who painted the Mona Lisa?"},
		{ID: 3, Question: "TITLE holder of 1990?"},
		{ID: 4, Question: "Où est l'ÉCOLE?"},
	}

	assert.Equal(t, []int{1, 3}, ids(Search(items, "title")))
	assert.Equal(t, []int{2}, ids(Search(items, "MONA")))
	assert.Equal(t, []int{4}, ids(Search(items, "école")))
	assert.Empty(t, Search(items, "zzz_no_match"))
}

func TestSearchBlankTermMatchesEverything(t *testing.T) {
	items := numberedQuestions(4)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Search(items, "")))
}

func TestFilterByCategoryExactMatch(t *testing.T) {
	items := []Question{
		{ID: 1, Category: "1"},
		{ID: 2, Category: "10"},
		{ID: 3, Category: "1"},
		{ID: 4, Category: "0"},
	}

	assert.Equal(t, []int{1, 3}, ids(FilterByCategory(items, "1")))
	assert.Equal(t, []int{2}, ids(FilterByCategory(items, "10")))
	assert.Empty(t, FilterByCategory(items, "01"))
}

func TestDisplayCategoryToStoredKey(t *testing.T) {
	key, all := DisplayCategoryToStoredKey(0)
	assert.True(t, all)
	assert.Empty(t, key)

	key, all = DisplayCategoryToStoredKey(1)
	assert.False(t, all)
	assert.Equal(t, "0", key)

	key, all = DisplayCategoryToStoredKey(6)
	assert.False(t, all)
	assert.Equal(t, "5", key)
}

func TestCategoryHelpers(t *testing.T) {
	categories := []Category{{ID: 3, Type: "Geography"}, {ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}

	sorted := SortCategories(categories)
	assert.Equal(t, []Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}, {ID: 3, Type: "Geography"}}, sorted)
	assert.Equal(t, 3, categories[0].ID)
	assert.Equal(t, map[int]string{1: "Science", 2: "Art", 3: "Geography"}, CategoryLabels(categories))
}

func ids(items []Question) []int {
	out := make([]int, 0, len(items))
	for _, q := range items {
		out = append(out, q.ID)
	}
	return out
}
