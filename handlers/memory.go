package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careeragent/utils"
)

type StoreMemoryRequest struct {
	Content    string                 `json:"content" binding:"required"`
	MemoryType string                 `json:"memory_type"`
	Metadata   map[string]interface{} `json:"metadata"`
}

func (a *API) StoreMemory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req StoreMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if req.MemoryType == "" {
		req.MemoryType = "note"
	}

	embedding := a.Embeddings.Generate(req.Content)
	memory, err := a.Store.Memories.Save(userID, req.Content, req.MemoryType, req.Metadata, embedding)
	if err != nil {
		utils.InternalServerError(c, "Failed to store memory", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "memory": memory})
}

func (a *API) RecentMemories(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	memories, err := a.Store.Memories.Recent(userID, limit)
	if err != nil {
		utils.InternalServerError(c, "Failed to load memories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "memories": memories, "count": len(memories)})
}

type SearchMemoryRequest struct {
	Query string `json:"query" binding:"required"`
	TopK  int    `json:"top_k"`
}

// SearchMemories ranks the recent memory window by embedding similarity
// to the query. Ranking happens in process over recent rows; there is
// no vector index.
func (a *API) SearchMemories(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req SearchMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if req.TopK <= 0 {
		req.TopK = 5
	}

	memories, err := a.Store.Memories.Search(userID, req.Query, 50)
	if err != nil {
		utils.InternalServerError(c, "Failed to load memories", err)
		return
	}

	contents := make([]string, len(memories))
	for i, m := range memories {
		contents[i] = m.Content
	}

	queryVec := a.Embeddings.Generate(req.Query)
	candidates := a.Embeddings.GenerateBatch(contents)
	matches := a.Embeddings.FindSimilar(queryVec, candidates, req.TopK)

	results := make([]gin.H, 0, len(matches))
	for _, match := range matches {
		results = append(results, gin.H{
			"memory":           memories[match.Index],
			"similarity_score": match.Score,
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "results": results})
}

type EmbedRequest struct {
	Text string `json:"text" binding:"required"`
}

func (a *API) Embed(c *gin.Context) {
	var req EmbedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	vec := a.Embeddings.Generate(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"embedding": vec,
		"dimension": a.Embeddings.Dimension(),
	})
}

type SimilarityRequest struct {
	TextA string `json:"text_a" binding:"required"`
	TextB string `json:"text_b" binding:"required"`
}

func (a *API) Similarity(c *gin.Context) {
	var req SimilarityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	score := a.Embeddings.Similarity(a.Embeddings.Generate(req.TextA), a.Embeddings.Generate(req.TextB))
	c.JSON(http.StatusOK, gin.H{"status": "success", "similarity": score})
}
