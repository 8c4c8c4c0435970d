package handlers

import (
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	status := c.Query("status", "")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	jobs, total, err := h.jobs.ListJobs(status, limit, offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"jobs":   jobs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
	}

	job, err := h.jobs.GetJob(jobID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) SetJobStatus(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.jobs.SetJobStatus(jobID, req.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Job status updated"))
}

func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid job ID"))
	}

	if err := h.jobs.DeleteJob(jobID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Job deleted"))
}
