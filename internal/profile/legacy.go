package profile

import "github.com/jonathan/profile-engine/internal/types"

// ToLegacy renders a profile in the loose shape older callers read, mirroring each
// resolved alias into both of its legacy keys. The engine itself never consumes this.
func ToLegacy(p *types.Profile) map[string]any {
	out := map[string]any{
		"id":               p.ID,
		"fullName":         p.FullName,
		"email":            p.Email,
		"phone":            p.Phone,
		"phoneNumber":      p.Phone,
		"district":         p.District,
		"location":         p.District,
		"educationLevel":   p.EducationLevel,
		"highestEducation": p.EducationLevel,
		"skills":           append([]string{}, p.Skills...),
		"interests":        append([]string{}, p.Interests...),
		"careerGoal":       p.CareerGoal,
		"status":           string(p.Status),
		"experienceYears":  p.ExperienceYears,
		"profileCompleted": p.ProfileCompleted,
	}

	if p.EducationDetails != nil {
		out["educationDetails"] = map[string]any{
			"institution": p.EducationDetails.Institution,
			"field":       p.EducationDetails.Field,
			"gradYear":    p.EducationDetails.GradYear,
			"description": p.EducationDetails.Description,
		}
	}
	if p.ResumeData != nil {
		out["resumeData"] = map[string]any{
			"topProject":       p.ResumeData.TopProject,
			"recentRole":       p.ResumeData.RecentRole,
			"keyAchievement":   p.ResumeData.KeyAchievement,
			"impactMetric":     p.ResumeData.ImpactMetric,
			"responsibilities": append([]string{}, p.ResumeData.Responsibilities...),
		}
	}
	if len(p.CompletedTasks) > 0 {
		tasks := make(map[string]any, len(p.CompletedTasks))
		for plan, ids := range p.CompletedTasks {
			tasks[plan] = append([]string{}, ids...)
		}
		out["completedTasks"] = tasks
	}
	return out
}
