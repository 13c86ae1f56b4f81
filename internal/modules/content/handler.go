package content

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"portfolio/internal/modules/upload"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// FileStore persists uploaded files and hands back their public path.
type FileStore interface {
	Save(kind upload.Kind, fh *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

type Handler struct {
	service *Service
	files   FileStore
}

func NewHandler(service *Service, files FileStore) *Handler {
	return &Handler{service: service, files: files}
}

func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/profile", h.GetProfile)
	public.GET("/portfolio", h.GetPortfolio)

	public.GET("/skills", h.ListSkills)
	public.GET("/skills/grouped", h.ListSkillGroups)
	public.GET("/skills/:id", h.GetSkill)

	public.GET("/technologies", h.ListTechnologies)
	public.GET("/projects", h.ListProjects)
	public.GET("/projects/:id", h.GetProject)
	public.GET("/certificates", h.ListCertificates)
	public.GET("/certificates/:id", h.GetCertificate)

	public.POST("/contact", h.Contact)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/profile", h.UpsertProfile)

	protected.POST("/skills", h.AddSkill)
	protected.PUT("/skills/:id", h.UpdateSkill)
	protected.DELETE("/skills/:id", h.DeleteSkill)

	protected.POST("/technologies", h.AddTechnology)
	protected.DELETE("/technologies/:id", h.DeleteTechnology)

	protected.POST("/projects", h.AddProject)
	protected.PUT("/projects/:id", h.UpdateProject)
	protected.DELETE("/projects/:id", h.DeleteProject)

	protected.POST("/certificates", h.AddCertificate)
	protected.PUT("/certificates/:id", h.UpdateCertificate)
	protected.DELETE("/certificates/:id", h.DeleteCertificate)

	protected.GET("/messages", h.ListMessages)
	protected.DELETE("/messages/:id", h.DeleteMessage)

	protected.GET("/dashboard", h.Dashboard)

	protected.POST("/resume", h.UploadResume)
	protected.DELETE("/resume", h.DeleteResume)
}

// writeError maps service and upload errors onto the response envelope.
func writeError(c *gin.Context, err error, what string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.Validation(c, verr.Fields)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", what+" not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", what+" already exists")
	case errors.Is(err, upload.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, upload.ErrInvalidMimeType), errors.Is(err, upload.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "UPLOAD_REJECTED", err.Error())
	default:
		log.Printf("content: %s: %v", what, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return false
	}
	return true
}

// saveOptional stores the file under field when one was sent. A nil path
// with a nil error means no file was supplied.
func (h *Handler) saveOptional(c *gin.Context, field string, kind upload.Kind) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	path, err := h.files.Save(kind, fh)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// discard removes a file saved for a write that then failed.
func (h *Handler) discard(path *string) {
	if path == nil {
		return
	}
	if err := h.files.Remove(*path); err != nil {
		log.Printf("content: remove orphaned upload %s: %v", *path, err)
	}
}

// replaced removes the file a successful write swapped out.
func (h *Handler) replaced(previous, current *string) {
	if previous == nil || current == nil || *previous == *current {
		return
	}
	h.discard(previous)
}

// The lookups below read the stored file path before a write so it can be
// removed afterwards. A failed lookup only means the old file stays.

func (h *Handler) profileImage(c *gin.Context) *string {
	p, err := h.service.GetProfile(c.Request.Context())
	if err != nil {
		return nil
	}
	return p.ImagePath
}

func (h *Handler) profileResume(c *gin.Context) *string {
	p, err := h.service.GetProfile(c.Request.Context())
	if err != nil {
		return nil
	}
	return p.ResumePath
}

func (h *Handler) projectImage(c *gin.Context, id int64) *string {
	p, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return p.ImagePath
}

func (h *Handler) certificatePDF(c *gin.Context, id int64) *string {
	cert, err := h.service.GetCertificate(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return cert.PDFPath
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

// --- profile ---

func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context())
	if err != nil {
		writeError(c, err, "profile")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) GetPortfolio(c *gin.Context) {
	view, err := h.service.Portfolio(c.Request.Context())
	if err != nil {
		writeError(c, err, "portfolio")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var req ProfileRequest
	if !bind(c, &req) {
		return
	}
	image, err := h.saveOptional(c, "profileImage", upload.KindImage)
	if err != nil {
		writeError(c, err, "profile image")
		return
	}

	var previous *string
	if image != nil {
		previous = h.profileImage(c)
	}

	p, err := h.service.UpsertProfile(c.Request.Context(), req, image)
	if err != nil {
		h.discard(image)
		writeError(c, err, "profile")
		return
	}
	h.replaced(previous, image)
	response.Success(c, http.StatusOK, p)
}

// --- skills ---

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.service.ListSkills(c.Request.Context())
	if err != nil {
		writeError(c, err, "skills")
		return
	}
	response.Success(c, http.StatusOK, skills)
}

func (h *Handler) ListSkillGroups(c *gin.Context) {
	groups, err := h.service.ListSkillGroups(c.Request.Context())
	if err != nil {
		writeError(c, err, "skills")
		return
	}
	response.Success(c, http.StatusOK, groups)
}

func (h *Handler) GetSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	skill, err := h.service.GetSkill(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "skill")
		return
	}
	response.Success(c, http.StatusOK, skill)
}

func (h *Handler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.service.AddSkill(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "skill")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SkillRequest
	if !bind(c, &req) {
		return
	}
	if err := h.service.UpdateSkill(c.Request.Context(), id, req); err != nil {
		writeError(c, err, "skill")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSkill(c.Request.Context(), id); err != nil {
		writeError(c, err, "skill")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// --- technologies ---

func (h *Handler) ListTechnologies(c *gin.Context) {
	techs, err := h.service.ListTechnologies(c.Request.Context())
	if err != nil {
		writeError(c, err, "technologies")
		return
	}
	response.Success(c, http.StatusOK, techs)
}

func (h *Handler) AddTechnology(c *gin.Context) {
	var req TechnologyRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.service.AddTechnology(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "technology")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) DeleteTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTechnology(c.Request.Context(), id); err != nil {
		writeError(c, err, "technology")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// --- projects ---

// projectPayload is what the admin UI posts: the project fields plus the
// technology list, as JSON or multipart form.
type projectPayload struct {
	ProjectRequest
	Technologies TechnologyList `json:"technologies" form:"-"`
}

func (h *Handler) bindProject(c *gin.Context) (ProjectRequest, []string, bool) {
	var p projectPayload
	if !bind(c, &p) {
		return ProjectRequest{}, nil, false
	}
	tech := []string(p.Technologies)
	if isMultipart(c) || c.ContentType() == "application/x-www-form-urlencoded" {
		tech = NormalizeTechnologies(c.PostFormArray("technologies")...)
	}
	return p.ProjectRequest, tech, true
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		writeError(c, err, "projects")
		return
	}
	response.Success(c, http.StatusOK, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "project")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) AddProject(c *gin.Context) {
	req, tech, ok := h.bindProject(c)
	if !ok {
		return
	}
	image, err := h.saveOptional(c, "image", upload.KindImage)
	if err != nil {
		writeError(c, err, "project image")
		return
	}
	id, err := h.service.AddProject(c.Request.Context(), req, tech, image)
	if err != nil {
		h.discard(image)
		writeError(c, err, "project")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, tech, ok := h.bindProject(c)
	if !ok {
		return
	}
	image, err := h.saveOptional(c, "image", upload.KindImage)
	if err != nil {
		writeError(c, err, "project image")
		return
	}
	var previous *string
	if image != nil {
		previous = h.projectImage(c, id)
	}
	if err := h.service.UpdateProject(c.Request.Context(), id, req, tech, image); err != nil {
		h.discard(image)
		writeError(c, err, "project")
		return
	}
	h.replaced(previous, image)
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	previous := h.projectImage(c, id)
	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		writeError(c, err, "project")
		return
	}
	h.discard(previous)
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// --- certificates ---

func (h *Handler) ListCertificates(c *gin.Context) {
	certs, err := h.service.ListCertificates(c.Request.Context())
	if err != nil {
		writeError(c, err, "certificates")
		return
	}
	response.Success(c, http.StatusOK, certs)
}

func (h *Handler) GetCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cert, err := h.service.GetCertificate(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "certificate")
		return
	}
	response.Success(c, http.StatusOK, cert)
}

func (h *Handler) AddCertificate(c *gin.Context) {
	var req CertificateRequest
	if !bind(c, &req) {
		return
	}
	pdf, err := h.saveOptional(c, "pdf", upload.KindPDF)
	if err != nil {
		writeError(c, err, "certificate pdf")
		return
	}
	id, err := h.service.AddCertificate(c.Request.Context(), req, pdf)
	if err != nil {
		h.discard(pdf)
		writeError(c, err, "certificate")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CertificateRequest
	if !bind(c, &req) {
		return
	}
	pdf, err := h.saveOptional(c, "pdf", upload.KindPDF)
	if err != nil {
		writeError(c, err, "certificate pdf")
		return
	}
	var previous *string
	if pdf != nil {
		previous = h.certificatePDF(c, id)
	}
	if err := h.service.UpdateCertificate(c.Request.Context(), id, req, pdf); err != nil {
		h.discard(pdf)
		writeError(c, err, "certificate")
		return
	}
	h.replaced(previous, pdf)
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) DeleteCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	previous := h.certificatePDF(c, id)
	if err := h.service.DeleteCertificate(c.Request.Context(), id); err != nil {
		writeError(c, err, "certificate")
		return
	}
	h.discard(previous)
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// --- messages ---

func (h *Handler) Contact(c *gin.Context) {
	var req MessageRequest
	if !bind(c, &req) {
		return
	}
	m, err := h.service.AddMessage(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		writeError(c, err, "message")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": m.ID, "message": "Message sent successfully!"})
}

func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		writeError(c, err, "messages")
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMessage(c.Request.Context(), id); err != nil {
		writeError(c, err, "message")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// --- dashboard & résumé ---

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		writeError(c, err, "dashboard")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) UploadResume(c *gin.Context) {
	fh, err := c.FormFile("resume")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file uploaded")
		return
	}
	path, err := h.files.Save(upload.KindResume, fh)
	if err != nil {
		writeError(c, err, "resume")
		return
	}
	previous := h.profileResume(c)
	if err := h.service.UploadResume(c.Request.Context(), path); err != nil {
		h.discard(&path)
		writeError(c, err, "resume")
		return
	}
	h.replaced(previous, &path)
	response.Success(c, http.StatusOK, gin.H{"path": path})
}

func (h *Handler) DeleteResume(c *gin.Context) {
	previous, err := h.service.DeleteResume(c.Request.Context())
	if err != nil {
		writeError(c, err, "resume")
		return
	}
	h.discard(&previous)
	response.Success(c, http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}
