// internal/api/tournament_handlers.go
// Tournament HTTP handlers: create, snapshot read, and the clock-advancing
// mutations (spec.md §6)

package api

import (
	"net/http"
	"time"

	"golf-sim/internal/models"
	"golf-sim/internal/services"

	"github.com/gin-gonic/gin"
)

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// HandleListTournaments lists tournaments owned by the organizer_id query
// param, or every tournament when the param is absent
func HandleListTournaments(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournaments, err := tournamentService.List(c.Request.Context(), c.Query("organizer_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tournaments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tournaments": tournaments})
	}
}

type createTournamentBody struct {
	Name        string                         `json:"name" binding:"required"`
	CourseID    string                         `json:"course_id" binding:"required"`
	GolferCount int                            `json:"golfer_count" binding:"required,min=1"`
	FieldType   string                         `json:"field_type" binding:"required,oneof=top_ranked amateur random mixed mid_tier"`
	Format      models.TournamentFormat        `json:"format" binding:"required,oneof=stroke match match_fourball"`
	Humans      []createHumanEntryBody         `json:"humans"`
	StartTime   *string                        `json:"start_time"`
}

type createHumanEntryBody struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country"`
	Handedness  string `json:"handedness"`
	AvatarColor string `json:"avatar_color"`
	Team        string `json:"team" binding:"omitempty,oneof=USA EUR"`
}

// HandleCreateTournament handles tournament creation
func HandleCreateTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		organizerID := c.GetString("organizer_id")

		var body createTournamentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req := services.CreateTournamentRequest{
			Name:        body.Name,
			CourseID:    body.CourseID,
			GolferCount: body.GolferCount,
			FieldType:   body.FieldType,
			Format:      body.Format,
		}
		for _, h := range body.Humans {
			req.Humans = append(req.Humans, services.HumanEntryRequest{
				Name:        h.Name,
				Country:     h.Country,
				Handedness:  h.Handedness,
				AvatarColor: h.AvatarColor,
				Team:        h.Team,
			})
		}
		if body.StartTime != nil {
			if t, err := parseRFC3339(*body.StartTime); err == nil {
				req.StartTime = &t
			}
		}

		tournament, err := tournamentService.Create(c.Request.Context(), organizerID, req)
		if err != nil {
			if err == services.ErrNoCourse {
				c.JSON(http.StatusBadRequest, gin.H{"error": "course has no holes"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"tournament": tournament})
	}
}

// HandleGetTournament returns the full tournament snapshot
func HandleGetTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := tournamentService.GetSnapshot(c.Request.Context(), c.Param("id"))
		if err != nil {
			if err == services.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tournament"})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleTick advances the tournament clock
func HandleTick(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Minutes int `json:"minutes"`
		}
		c.ShouldBindJSON(&body)

		snapshot, err := tournamentService.Tick(c.Request.Context(), c.Param("id"), body.Minutes)
		if err != nil {
			writeTournamentMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleSimToTee advances the clock to the next human tee time
func HandleSimToTee(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := tournamentService.SimToTee(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeTournamentMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleSimToEndOfDay advances the clock to the end of the current round
func HandleSimToEndOfDay(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := tournamentService.SimToEndOfDay(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeTournamentMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleSubmitHoleResult records a human's strokes for one hole
func HandleSubmitHoleResult(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			EntryID     string `json:"entry_id" binding:"required"`
			HoleNumber  int    `json:"hole_number" binding:"required"`
			Strokes     int    `json:"strokes" binding:"required"`
			RoundNumber int    `json:"round_number"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		snapshot, err := tournamentService.SubmitHoleResult(c.Request.Context(), c.Param("id"), services.HoleResultRequest{
			EntryID:     body.EntryID,
			HoleNumber:  body.HoleNumber,
			Strokes:     body.Strokes,
			RoundNumber: body.RoundNumber,
		})
		if err != nil {
			writeTournamentMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleShufflePairings reshuffles match-play pairings before play starts
func HandleShufflePairings(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := tournamentService.ShufflePairings(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeTournamentMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

func writeTournamentMutationError(c *gin.Context, err error) {
	switch err {
	case services.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
	case services.ErrTournamentLocked:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case services.ErrInvalidStrokes, services.ErrPlayAlreadyStarted, services.ErrInvalidFormat:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
