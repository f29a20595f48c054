package lms

import (
	"context"
	"fmt"
)

const (
	modulesPath       = "/modules/"
	modulePathPattern = modulesPath + "%d/"
)

// Module is a section of a SmartLMS course
type Module struct {
	ID      int      `json:"id"`
	Course  int      `json:"course"`
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Lessons []Lesson `json:"lessons"`
}

// ModuleRequest is the payload of a new module
type ModuleRequest struct {
	Course int    `json:"course" validate:"required,gt=0"`
	Title  string `json:"title" validate:"required,max=200"`
	Order  int    `json:"order" validate:"gte=0"`
}

func (c *lmsClient) CreateModule(ctx context.Context, req ModuleRequest) (Module, error) {
	var module Module
	if err := c.post(ctx, modulesPath, req, &module); err != nil {
		return Module{}, err
	}
	return module, nil
}

func (c *lmsClient) DeleteModule(ctx context.Context, moduleID int) error {
	return c.delete(ctx, fmt.Sprintf(modulePathPattern, moduleID))
}
