package tutor

import "strings"

// Course is a curated learning resource.
type Course struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

var recommendedVideos = []Video{
	{ID: "rfscVS0vtbw", Title: "Python Full Course for Beginners"},
	{ID: "GwIo3gDZCVQ", Title: "Machine Learning Tutorial for Beginners"},
	{ID: "RBSGKlAvoiM", Title: "React JS Crash Course"},
	{ID: "aircAruvnKk", Title: "Deep Learning with Python - Full Course"},
	{ID: "XKHEtdqhLK8", Title: "Data Science Roadmap 2025"},
	{ID: "f02mOEt11OQ", Title: "AI Explained in Simple Terms"},
}

var recommendedCourses = []Course{
	{
		Title:       "Python for Everybody",
		Description: "University of Michigan's beginner-friendly course covering Python basics to advanced concepts.",
		URL:         "https://www.coursera.org/specializations/python",
	},
	{
		Title:       "Machine Learning by Andrew Ng",
		Description: "Stanford's world-famous ML course teaching algorithms, supervised and unsupervised learning.",
		URL:         "https://www.coursera.org/learn/machine-learning",
	},
	{
		Title:       "Deep Learning Specialization",
		Description: "Comprehensive 5-course program by Andrew Ng to master neural networks and deep learning.",
		URL:         "https://www.coursera.org/specializations/deep-learning",
	},
	{
		Title:       "Frontend Development with React",
		Description: "Learn React.js, components, and state management through interactive lessons.",
		URL:         "https://www.freecodecamp.org/learn/front-end-development-libraries/",
	},
	{
		Title:       "Introduction to Data Science",
		Description: "IBM's Data Science foundation course covering Python, data analysis, and visualization.",
		URL:         "https://www.coursera.org/learn/what-is-datascience",
	},
	{
		Title:       "AI For Everyone",
		Description: "A non-technical introduction to AI for students, business professionals, and curious minds.",
		URL:         "https://www.coursera.org/learn/ai-for-everyone",
	},
}

// RecommendedVideos returns the static curated video list.
func RecommendedVideos() []Video {
	videos := make([]Video, len(recommendedVideos))
	copy(videos, recommendedVideos)
	return videos
}

// RecommendedCourses returns the curated course list, optionally filtered
// by a case-insensitive match on title or description. A filter that
// matches nothing falls back to the full list.
func RecommendedCourses(query string) []Course {
	courses := make([]Course, len(recommendedCourses))
	copy(courses, recommendedCourses)
	if query == "" {
		return courses
	}

	query = strings.ToLower(query)
	var filtered []Course
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Title), query) ||
			strings.Contains(strings.ToLower(course.Description), query) {
			filtered = append(filtered, course)
		}
	}
	if len(filtered) == 0 {
		return courses
	}
	return filtered
}
