package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ascend-hq/ascend/internal/appcontext"
	"github.com/ascend-hq/ascend/internal/entity"
)

// SeedDemoData loads placeholder rows for local development. It runs only
// when SEED_DEMO_DATA=true is set explicitly and the environment is not
// production, and it never touches a database that already has users.
func SeedDemoData(ctx *appcontext.Context) error {
	if os.Getenv("SEED_DEMO_DATA") != "true" || os.Getenv("ENVIRONMENT") == "production" {
		return nil
	}

	var userCount int64
	if err := ctx.DB.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount > 0 {
		return nil
	}

	users := []entity.User{
		{Email: "ada@ascend.dev", Name: "Ada Leader", Role: entity.RoleLeader, Status: "active"},
		{Email: "grace@ascend.dev", Name: "Grace Manager", Role: entity.RoleManager, Status: "active"},
		{Email: "linus@ascend.dev", Name: "Linus Contributor", Role: entity.RoleContributor, Status: "active"},
	}
	for i := range users {
		if err := ctx.DB.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	paths := []entity.CareerPath{
		{Name: "Engineering Management", Description: "People and delivery leadership track"},
		{Name: "Staff Engineering", Description: "Deep technical track"},
		{Name: "Product Management", Description: "Product strategy track"},
		{Name: "Data Science", Description: "Analytics and modeling track"},
	}
	for i := range paths {
		if err := ctx.DB.Create(&paths[i]).Error; err != nil {
			return fmt.Errorf("failed to seed career paths: %w", err)
		}
	}

	skills := []entity.Skill{
		{Name: "Go"}, {Name: "React"}, {Name: "SQL"}, {Name: "Kubernetes"}, {Name: "Design"},
	}
	for i := range skills {
		if err := ctx.DB.Create(&skills[i]).Error; err != nil {
			return fmt.Errorf("failed to seed skills: %w", err)
		}
	}

	ctx.Logger.Info("seeded demo data",
		zap.Int("users", len(users)),
		zap.Int("career_paths", len(paths)),
		zap.Int("skills", len(skills)),
	)

	return nil
}
