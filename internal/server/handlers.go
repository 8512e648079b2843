package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/topprix-dz/internal/agent"
)

const (
	projectName    = "TopPrix-DZ"
	projectVersion = "2.0"
)

// agentRequest is the body of POST /agent
type agentRequest struct {
	Message string `json:"message"`
}

// searchRequest is the body of POST /api/search
type searchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"userId"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "✅ Active",
		"project": projectName,
		"message": "API is running successfully! 🚀",
		"endpoints": gin.H{
			"agent":  "POST /agent - الدردشة مع AI",
			"search": "POST /api/search - البحث عن المنتجات",
			"health": "GET /health - حالة النظام",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "✅ Active",
		"project":   projectName,
		"version":   projectVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"features": []string{
			"AI Assistant with Groq",
			"Intent Detection",
			"Product Search",
			"Price Comparison",
		},
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        projectName,
		"description": "بوت ذكي لمقارنة الأسعار في الجزائر",
		"version":     projectVersion,
		"author":      "TopPrix Team",
		"endpoints": []string{
			"GET / - الصفحة الرئيسية",
			"POST /agent - الدردشة الذكية",
			"POST /api/search - البحث عن المنتجات",
			"GET /health - حالة النظام",
			"GET /info - معلومات المشروع",
		},
	})
}

// handleAgent forwards the message to the AI branch of the builder.
// An absent body falls through to the builder's missing-field check; a
// malformed one is rejected as a missing field before any branch runs.
func (s *Server) handleAgent(c *gin.Context) {
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength != 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "الرسالة مطلوبة"})
		return
	}

	resp, err := s.builder.HandleAgent(c.Request.Context(), req.Message)
	if err != nil {
		switch agent.KindOf(err) {
		case agent.KindMissingField:
			c.JSON(http.StatusBadRequest, gin.H{"error": "الرسالة مطلوبة"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "فشل في معالجة الطلب",
				"details": agent.DetailOf(err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength != 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "⛔ يرجى إدخال كلمة البحث",
		})
		return
	}

	resp, err := s.builder.HandleSearch(c.Request.Context(), req.Query, req.UserID)
	if err != nil {
		switch agent.KindOf(err) {
		case agent.KindMissingField:
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "⛔ يرجى إدخال كلمة البحث",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "خطأ في الخادم الداخلي",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
