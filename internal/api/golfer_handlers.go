// internal/api/golfer_handlers.go
// Golfer catalogue HTTP handlers

package api

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"golf-sim/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleListGolfers lists every active golfer with its derived overall
func HandleListGolfers(golferService *services.GolferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		golfers, err := golferService.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list golfers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"golfers": golfers})
	}
}

// HandleRefreshRatings re-derives golfer ratings from an uploaded ranking
// CSV (header NAME, RANKING, CTRY), per spec.md §6.
func HandleRefreshRatings(golferService *services.GolferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _, err := c.Request.FormFile("ranking_csv")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ranking_csv file is required"})
			return
		}
		defer file.Close()

		reader := csv.NewReader(file)
		header, err := reader.Read()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty or invalid CSV"})
			return
		}
		nameIdx, rankIdx, ctryIdx := columnIndex(header, "NAME"), columnIndex(header, "RANKING"), columnIndex(header, "CTRY")
		if nameIdx < 0 || rankIdx < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV must have NAME and RANKING columns"})
			return
		}

		var rows []services.RankingRow
		for {
			record, err := reader.Read()
			if err != nil {
				break
			}
			rank, err := strconv.Atoi(strings.TrimSpace(record[rankIdx]))
			if err != nil {
				continue
			}
			row := services.RankingRow{Name: strings.TrimSpace(record[nameIdx]), Ranking: rank}
			if ctryIdx >= 0 && ctryIdx < len(record) {
				row.Country = strings.TrimSpace(record[ctryIdx])
			}
			rows = append(rows, row)
		}

		count, err := golferService.RefreshRatings(c.Request.Context(), rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh ratings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"refreshed": count})
	}
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
