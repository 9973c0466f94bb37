package handler

import (
	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:             j.ID,
		EmployerID:     j.EmployerID,
		Company:        j.Company,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		IsRemote:       j.IsRemote,
		Salary:         j.Salary,
		EmploymentType: string(j.EmploymentType),
		Tags:           j.Tags,
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt.UTC(),
		UpdatedAt:      j.UpdatedAt.UTC(),
	}
}

func toJobDetailResponse(d *ports.JobDetail) jobDetailResponse {
	return jobDetailResponse{
		jobResponse:    toJobResponse(d.Job),
		ApplicantCount: d.ApplicantCount,
	}
}

func toJobListResponse(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return out
}

func toJobDetailListResponse(items []ports.JobDetail) []jobDetailResponse {
	out := make([]jobDetailResponse, len(items))
	for i := range items {
		out[i] = toJobDetailResponse(&items[i])
	}
	return out
}

func toCreateJobInput(req createJobRequest, employerID string) ports.CreateJobInput {
	return ports.CreateJobInput{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		IsRemote:       req.IsRemote,
		SalaryMin:      req.Salary.Min,
		SalaryMax:      req.Salary.Max,
		EmploymentType: req.EmploymentType,
		Tags:           req.Tags,
		CompanyLogoURL: req.CompanyLogoURL,
	}
}

func toUpdateJobInput(req updateJobRequest, jobID, employerID string) ports.UpdateJobInput {
	input := ports.UpdateJobInput{
		JobID:          jobID,
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		IsRemote:       req.IsRemote,
		EmploymentType: req.EmploymentType,
		Tags:           req.Tags,
		CompanyLogoURL: req.CompanyLogoURL,
	}
	if req.Salary != nil {
		input.SalaryMin = &req.Salary.Min
		input.SalaryMax = &req.Salary.Max
	}
	return input
}

func toSearchFilter(q searchJobsQuery) ports.SearchJobsFilter {
	return ports.SearchJobsFilter{
		Query:          q.Query,
		Location:       q.Location,
		IsRemote:       q.IsRemote,
		SalaryMin:      q.SalaryMin,
		EmploymentType: q.EmploymentType,
		ByRelevance:    q.Sort == "relevance",
		Page:           q.Page,
		Limit:          q.Limit,
	}
}
