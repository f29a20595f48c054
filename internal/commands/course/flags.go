package course

import (
	"fmt"
	"strings"

	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
)

const (
	flagCategory = "category"

	flagTitle      = "title"
	flagTitleUsage = "the course title"

	flagDescription      = "description"
	flagDescriptionUsage = "the course description"

	flagFile      = "file"
	flagFileUsage = "the course outline YAML file to build the course from"

	flagCourseUsage = "the id of the course"
)

var (
	flagCategoryListUsage = fmt.Sprintf(`filter the courses by categories (Allowed values: "%s")`, strings.Join(lms.Categories, `", "`))
	flagCategoryUsage     = fmt.Sprintf(`the course category (Allowed values: "%s")`, strings.Join(lms.Categories, `", "`))
)
