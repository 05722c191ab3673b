package persistent

import (
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/model"
)

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Excerpt:   m.Excerpt,
		Content:   m.Content,
		Image:     m.Image,
		Category:  m.Category,
		ReadTime:  m.ReadTime,
		Date:      m.Date,
		Tags:      nonNil(m.Tags),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Slug:      e.Slug,
		Excerpt:   e.Excerpt,
		Content:   e.Content,
		Image:     e.Image,
		Category:  e.Category,
		ReadTime:  e.ReadTime,
		Date:      e.Date,
		Tags:      nonNil(e.Tags),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCertificateEntity(m *model.CertificateModel) *entity.Certificate {
	if m == nil {
		return nil
	}

	return &entity.Certificate{
		ID:           m.ID,
		Title:        m.Title,
		Issuer:       m.Issuer,
		IssueDate:    m.IssueDate,
		Description:  m.Description,
		CredentialID: m.CredentialID,
		Skills:       nonNil(m.Skills),
		VerifyURL:    m.VerifyURL,
		Image:        m.Image,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCertificateModel(e *entity.Certificate) *model.CertificateModel {
	if e == nil {
		return nil
	}

	return &model.CertificateModel{
		ID:           e.ID,
		Title:        e.Title,
		Issuer:       e.Issuer,
		IssueDate:    e.IssueDate,
		Description:  e.Description,
		CredentialID: e.CredentialID,
		Skills:       nonNil(e.Skills),
		VerifyURL:    e.VerifyURL,
		Image:        e.Image,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToEducationEntity(m *model.EducationModel) *entity.Education {
	if m == nil {
		return nil
	}

	return &entity.Education{
		ID:           m.ID,
		Degree:       m.Degree,
		Institution:  m.Institution,
		Period:       m.Period,
		Location:     m.Location,
		GPA:          m.GPA,
		Description:  m.Description,
		Achievements: nonNil(m.Achievements),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToEducationModel(e *entity.Education) *model.EducationModel {
	if e == nil {
		return nil
	}

	return &model.EducationModel{
		ID:           e.ID,
		Degree:       e.Degree,
		Institution:  e.Institution,
		Period:       e.Period,
		Location:     e.Location,
		GPA:          e.GPA,
		Description:  e.Description,
		Achievements: nonNil(e.Achievements),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToExperienceEntity(m *model.ExperienceModel) *entity.Experience {
	if m == nil {
		return nil
	}

	return &entity.Experience{
		ID:           m.ID,
		Title:        m.Title,
		Company:      m.Company,
		Location:     m.Location,
		Period:       m.Period,
		Type:         entity.ExperienceType(m.Type),
		Description:  m.Description,
		Achievements: nonNil(m.Achievements),
		Technologies: nonNil(m.Technologies),
		Website:      m.Website,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToExperienceModel(e *entity.Experience) *model.ExperienceModel {
	if e == nil {
		return nil
	}

	return &model.ExperienceModel{
		ID:           e.ID,
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		Period:       e.Period,
		Type:         string(e.Type),
		Description:  e.Description,
		Achievements: nonNil(e.Achievements),
		Technologies: nonNil(e.Technologies),
		Website:      e.Website,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToProjectEntity(m *model.ProjectModel) *entity.Project {
	if m == nil {
		return nil
	}

	return &entity.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Image:       m.Image,
		Category:    entity.ProjectCategory(m.Category),
		GithubURL:   m.GithubURL,
		LiveURL:     m.LiveURL,
		Featured:    m.Featured,
		Status:      entity.ProjectStatus(m.Status),
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToProjectModel(e *entity.Project) *model.ProjectModel {
	if e == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Image:       e.Image,
		Category:    string(e.Category),
		GithubURL:   e.GithubURL,
		LiveURL:     e.LiveURL,
		Featured:    e.Featured,
		Status:      string(e.Status),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToReviewEntity(m *model.ReviewModel) *entity.Review {
	if m == nil {
		return nil
	}

	return &entity.Review{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Company:   m.Company,
		Text:      m.Text,
		Avatar:    m.Avatar,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToReviewModel(e *entity.Review) *model.ReviewModel {
	if e == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Company:   e.Company,
		Text:      e.Text,
		Avatar:    e.Avatar,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToVoteCounterEntity(m *model.VoteCounterModel) *entity.VoteCounter {
	if m == nil {
		return nil
	}

	return &entity.VoteCounter{
		TargetID:  m.TargetID,
		Likes:     m.Likes,
		Dislikes:  m.Dislikes,
		UpdatedAt: m.UpdatedAt,
	}
}
