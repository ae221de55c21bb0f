// internal/api/course_handlers.go
// Course catalogue HTTP handlers

package api

import (
	"net/http"

	"golf-sim/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleListCourses lists every seeded course
func HandleListCourses(courseService *services.CourseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courses, err := courseService.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"courses": courses})
	}
}

// HandleGetCourse returns a course with its holes and tee boxes
func HandleGetCourse(courseService *services.CourseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		course, err := courseService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"course": course})
	}
}
