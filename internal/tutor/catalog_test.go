package tutor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func TestRecommendedVideos_ReturnsCuratedList(t *testing.T) {
	videos := RecommendedVideos()
	require.Len(t, videos, 6)
	assert.Equal(t, "rfscVS0vtbw", videos[0].ID)
}

func TestRecommendedCourses_NoFilter(t *testing.T) {
	courses := RecommendedCourses("")
	assert.Len(t, courses, 6)
}

func TestRecommendedCourses_FilterMatchesTitleOrDescription(t *testing.T) {
	courses := RecommendedCourses("PYTHON")
	require.NotEmpty(t, courses)
	for _, course := range courses {
		assert.True(t,
			containsFold(course.Title, "python") || containsFold(course.Description, "python"),
			"unexpected course %q", course.Title)
	}
	assert.Less(t, len(courses), 6)
}

func TestRecommendedCourses_NoMatchFallsBackToFullList(t *testing.T) {
	courses := RecommendedCourses("underwater basket weaving")
	assert.Len(t, courses, 6)
}

func TestRecommendedCourses_CallerCannotMutateCatalog(t *testing.T) {
	courses := RecommendedCourses("")
	courses[0].Title = "mutated"
	assert.NotEqual(t, "mutated", RecommendedCourses("")[0].Title)
}
