// Package web implements the REST API of the board service.
//
// Routes under /api/v1 that act on behalf of a user expect an x-user-id
// header forwarded by the gateway.
//
//	GET  /api/v1/catalog                       → selector values and sort keys
//	GET  /api/v1/jobs                          → search the catalogue
//	GET  /api/v1/jobs/:id                      → one job
//	POST /api/v1/jobs                          → post a job (employer, spends a credit)
//	POST /api/v1/jobs/:id/should-apply         → "Should I apply?" verdict
//	POST /api/v1/jobs/:id/apply                → apply with the saved profile
//	GET  /api/v1/recommendations               → ranked jobs for the caller
//	GET  /api/v1/profile, PUT /api/v1/profile  → seeker profile
//	GET  /api/v1/applications                  → caller's applications
//	GET  /api/v1/employer/applications         → applicants to the caller's jobs
//	POST /api/v1/applications/:id/move         → move a card on the board
//	POST /api/v1/applications/:id/note         → employer note
//	GET  /api/v1/plans                         → plans and credit packages
//	GET  /api/v1/subscription                  → caller's subscription
//	POST /api/v1/subscription                  → switch plan
//	POST /api/v1/subscription/credits          → buy a credit package
//	GET  /api/v1/admin/stats                   → platform counters
package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobmate/board-service/internal/admin"
	"jobmate/board-service/internal/billing"
	"jobmate/board-service/internal/jobs"
	"jobmate/board-service/internal/kanban"
	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/model"
)

// topMatchesShown is the size of the "top matches" strip on the jobs page.
const topMatchesShown = 3

// Handler holds the services behind the API.
type Handler struct {
	jobs    *jobs.Service
	board   *kanban.Service
	billing *billing.Service
	admin   *admin.Service
}

// NewHandler returns a configured Handler.
func NewHandler(js *jobs.Service, board *kanban.Service, bs *billing.Service, as *admin.Service) *Handler {
	return &Handler{jobs: js, board: board, billing: bs, admin: as}
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api/v1")
	{
		api.GET("/catalog", h.Catalog)
		api.GET("/plans", h.Plans)
		api.GET("/jobs", h.SearchJobs)
		api.GET("/jobs/:id", h.GetJob)
		// Anonymous callers send a candidate in the body.
		api.POST("/jobs/:id/should-apply", h.ShouldApply)
	}

	authed := api.Group("", requireUser())
	{
		authed.POST("/jobs", h.PostJob)
		authed.POST("/jobs/:id/apply", h.Apply)
		authed.GET("/recommendations", h.Recommendations)

		authed.GET("/profile", h.GetProfile)
		authed.PUT("/profile", h.SaveProfile)

		authed.GET("/applications", h.ListApplications)
		authed.GET("/employer/applications", h.ListApplicants)
		authed.POST("/applications/:id/move", h.MoveCard)
		authed.POST("/applications/:id/note", h.AddNote)

		authed.GET("/subscription", h.GetSubscription)
		authed.POST("/subscription", h.Subscribe)
		authed.POST("/subscription/credits", h.PurchaseCredits)

		authed.GET("/admin/stats", h.AdminStats)
	}
}

// ─── Catalogue ────────────────────────────────────────────────────────────────

func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":     model.Categories,
		"jobTypes":       model.JobTypes,
		"sortOptions":    []matching.SortBy{matching.SortMatch, matching.SortDate, matching.SortDistance},
		"statuses":       kanban.AllStatuses,
		"applicantSorts": []kanban.ApplicantSort{kanban.SortAIRanking, kanban.SortAIMatch, kanban.SortApplied, kanban.SortName},
	})
}

func (h *Handler) SearchJobs(c *gin.Context) {
	var criteria model.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		badRequest(c, "invalid search parameters")
		return
	}
	sortBy, ok := matching.ParseSortBy(c.Query("sort"))
	if !ok {
		badRequest(c, "unknown sort "+strconv.Quote(c.Query("sort")))
		return
	}
	var maxDistance float64
	if raw := c.Query("maxDistance"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			badRequest(c, "maxDistance must be a non-negative number")
			return
		}
		maxDistance = v
	}

	found, err := h.jobs.Search(c.Request.Context(), criteria, jobs.SearchOptions{SortBy: sortBy, MaxDistance: maxDistance})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":       found,
		"total":      len(found),
		"topMatches": matching.TopMatches(found, topMatchesShown),
	})
}

func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) PostJob(c *gin.Context) {
	var draft jobs.JobDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	job, err := h.jobs.Post(c.Request.Context(), userID(c), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ShouldApply scores the job against the candidate in the body, or against
// the caller's saved profile when the body is empty.
func (h *Handler) ShouldApply(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Request.ContentLength == 0 {
		uid := c.GetHeader(UserIDHeader)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "send a candidate or an x-user-id header"})
			return
		}
		rec, err := h.jobs.ShouldApplyForUser(ctx, c.Param("id"), uid)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
		return
	}

	var cand model.CandidateContext
	if err := c.ShouldBindJSON(&cand); err != nil {
		badRequest(c, "invalid candidate")
		return
	}
	rec, err := h.jobs.ShouldApply(ctx, c.Param("id"), cand)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) Recommendations(c *gin.Context) {
	recs, err := h.jobs.Recommendations(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// ─── Profile ──────────────────────────────────────────────────────────────────

func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.jobs.GetProfile(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) SaveProfile(c *gin.Context) {
	var in jobs.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	p, err := h.jobs.SaveProfile(c.Request.Context(), userID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ─── Applications ─────────────────────────────────────────────────────────────

func (h *Handler) Apply(c *gin.Context) {
	var body struct {
		CoverLetter string `json:"coverLetter"`
	}
	// The cover letter is optional, so is the body.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}
	app, err := h.board.Apply(c.Request.Context(), userID(c), c.Param("id"), body.CoverLetter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *Handler) ListApplications(c *gin.Context) {
	apps, err := h.board.ListForSeeker(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) ListApplicants(c *gin.Context) {
	var criteria kanban.ApplicantCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		badRequest(c, "invalid filter parameters")
		return
	}
	sortBy, ok := kanban.ParseApplicantSort(c.Query("sort"))
	if !ok {
		badRequest(c, "unknown sort "+strconv.Quote(c.Query("sort")))
		return
	}
	board, err := h.board.ListForEmployer(c.Request.Context(), userID(c), criteria, sortBy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) MoveCard(c *gin.Context) {
	var body struct {
		NewStatus string `json:"newStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body must contain newStatus")
		return
	}
	app, err := h.board.MoveCard(c.Request.Context(), userID(c), c.Param("id"), body.NewStatus)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *Handler) AddNote(c *gin.Context) {
	var body struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body must contain note")
		return
	}
	app, err := h.board.AddNote(c.Request.Context(), userID(c), c.Param("id"), body.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ─── Billing ──────────────────────────────────────────────────────────────────

func (h *Handler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"employerPlans":  billing.EmployerPlans,
		"seekerPlans":    billing.SeekerPlans,
		"creditPackages": billing.CreditPackages,
	})
}

func (h *Handler) GetSubscription(c *gin.Context) {
	sub, ok, err := h.billing.Current(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		writeError(c, errNoSubscription)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var body struct {
		PlanID string `json:"planId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body must contain planId")
		return
	}
	sub, err := h.billing.Subscribe(c.Request.Context(), userID(c), body.PlanID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *Handler) PurchaseCredits(c *gin.Context) {
	var body struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "body must contain packageId")
		return
	}
	sub, err := h.billing.PurchaseCredits(c.Request.Context(), userID(c), body.PackageID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ─── Admin ────────────────────────────────────────────────────────────────────

func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
