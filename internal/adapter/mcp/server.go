// Package mcp exposes the resume validators as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"resume-builder/internal/domain"
	"resume-builder/internal/quality"
	"resume-builder/internal/validation"
)

type Server struct {
	mcp *server.MCPServer
}

// New creates the server with every tool registered.
func New(version string) *Server {
	s := &Server{}
	s.mcp = server.NewMCPServer("resume-builder", version, server.WithToolCapabilities(false))

	s.mcp.AddTool(mcp.NewTool("validate_email",
		mcp.WithDescription("Validate and normalize an email address; suggests fixes for common domain typos."),
		mcp.WithString("email", mcp.Required(), mcp.Description("Email address to check")),
	), s.validateEmail)

	s.mcp.AddTool(mcp.NewTool("validate_phone",
		mcp.WithDescription("Validate a phone number and return its display and ATS formats."),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Phone number as typed")),
	), s.validatePhone)

	s.mcp.AddTool(mcp.NewTool("validate_date_range",
		mcp.WithDescription("Validate a MM/YYYY, YYYY or 'Mon YYYY' date range and compute its duration."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start date")),
		mcp.WithString("end", mcp.Description("End date; ignored when isCurrent is true")),
		mcp.WithBoolean("isCurrent", mcp.Description("Whether the range is ongoing")),
	), s.validateDateRange)

	s.mcp.AddTool(mcp.NewTool("score_section",
		mcp.WithDescription("Score one resume section from 0 to 100 with improvement feedback."),
		mcp.WithString("section", mcp.Required(),
			mcp.Enum(validation.SectionPersonalDetails, validation.SectionSummary, validation.SectionExperience,
				validation.SectionEducation, validation.SectionSkills),
			mcp.Description("Section name")),
		mcp.WithString("data", mcp.Required(), mcp.Description("Section JSON: an object, one experience or education entry, or the skills array")),
	), s.scoreSection)

	s.mcp.AddTool(mcp.NewTool("check_export_readiness",
		mcp.WithDescription("Evaluate whether a resume document can be exported and list blocking issues and warnings."),
		mcp.WithString("document", mcp.Required(), mcp.Description("Resume document JSON")),
	), s.checkExportReadiness)

	return s
}

func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) validateEmail(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(validation.ValidateEmail(email))
}

func (s *Server) validatePhone(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phone, err := req.RequireString("phone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(validation.ValidatePhone(phone))
}

func (s *Server) validateDateRange(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end := req.GetString("end", "")
	return jsonResult(validation.ValidateDateRange(start, end, req.GetBool("isCurrent", false)))
}

func (s *Server) scoreSection(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := req.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := decodeSection(section, []byte(data))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(validation.CalculateSectionQuality(section, value))
}

func decodeSection(section string, raw []byte) (any, error) {
	var (
		v   any
		err error
	)
	switch section {
	case validation.SectionPersonalDetails:
		var pd domain.PersonalDetails
		err = json.Unmarshal(raw, &pd)
		v = pd
	case validation.SectionSummary:
		var sum domain.Summary
		err = json.Unmarshal(raw, &sum)
		v = sum
	case validation.SectionExperience:
		var e domain.ExperienceEntry
		err = json.Unmarshal(raw, &e)
		v = e
	case validation.SectionEducation:
		var e domain.EducationEntry
		err = json.Unmarshal(raw, &e)
		v = e
	case validation.SectionSkills:
		var skills []domain.SkillCategory
		err = json.Unmarshal(raw, &skills)
		v = skills
	default:
		return nil, fmt.Errorf("unknown section %q", section)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s data: %w", section, err)
	}
	return v, nil
}

type readiness struct {
	quality.Report
	Decision string `json:"decision"`
}

func (s *Server) checkExportReadiness(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc := domain.NewDocument()
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid document: %v", err)), nil
	}
	report := quality.Evaluate(doc)
	return jsonResult(readiness{Report: report, Decision: quality.Decide(report, false).String()})
}
