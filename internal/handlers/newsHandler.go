package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/clearclause/contract-rag/internal/adapter/utils"
)

// NewsHandler proxies the public RSS feed for a topic. Any fetch failure is
// reported the same way as an empty feed, the client remedy is identical.
func NewsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	topic := strings.TrimSpace(utils.GetChiURLParam(r, "topic"))
	if topic == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Topic is required")
		return
	}

	articles, err := newsFetcher.TopicArticles(r.Context(), topic)
	if err != nil {
		logH.Error("news fetch failed", "topic", topic, "error", err)
	}
	if len(articles) == 0 {
		WriteErrorResponse(w, http.StatusNotFound, "No news found", fmt.Sprintf("No news found for '%s'", strings.ToLower(topic)))
		return
	}

	writeJsonResponse(w, http.StatusOK, articles)
}
