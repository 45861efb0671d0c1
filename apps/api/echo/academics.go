package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/elimuhq/elimu/core/access"
	"github.com/elimuhq/elimu/core/user"
)

// academicsApi serves the role-scoped entity views. Every endpoint derives
// its scope from the token claims; there are no query parameters to widen it.
type academicsApi struct {
	svc     *access.Service
	userSvc user.Service
}

func registerAcademicsAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *access.Service, userSvc user.Service) {
	api := academicsApi{svc: svc, userSvc: userSvc}

	ag := g.Group("", jwt)
	ag.GET("/students", api.students, permissionMiddleware(user.PermViewStudents))
	ag.GET("/faculty", api.faculty, permissionMiddleware(user.PermViewFaculty))
	ag.GET("/subjects", api.subjects, permissionMiddleware(user.PermViewSubjects))
	ag.GET("/grades", api.grades, permissionMiddleware(user.PermViewGrades))
	ag.GET("/dashboard", api.dashboard, permissionMiddleware(user.PermViewDashboard))
	ag.GET("/institutions", api.institutions)
}

func (api *academicsApi) scope(ctx echo.Context) (access.FilterContext, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return access.FilterContext{}, errors.Wrap(err, "getting context claims")
	}
	return claims.filterContext(), nil
}

func (api *academicsApi) students(ctx echo.Context) error {
	fc, err := api.scope(ctx)
	if err != nil {
		return err
	}
	students, err := api.svc.FilteredStudents(ctx.Request().Context(), fc)
	if err != nil {
		return errors.Wrap(err, "filtering students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *academicsApi) faculty(ctx echo.Context) error {
	fc, err := api.scope(ctx)
	if err != nil {
		return err
	}
	faculty, err := api.svc.FilteredFaculty(ctx.Request().Context(), fc)
	if err != nil {
		return errors.Wrap(err, "filtering faculty")
	}
	return ctx.JSON(http.StatusOK, faculty)
}

func (api *academicsApi) subjects(ctx echo.Context) error {
	fc, err := api.scope(ctx)
	if err != nil {
		return err
	}
	subjects, err := api.svc.FilteredSubjects(ctx.Request().Context(), fc)
	if err != nil {
		return errors.Wrap(err, "filtering subjects")
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func (api *academicsApi) grades(ctx echo.Context) error {
	fc, err := api.scope(ctx)
	if err != nil {
		return err
	}
	grades, err := api.svc.FilteredGrades(ctx.Request().Context(), fc)
	if err != nil {
		return errors.Wrap(err, "filtering grades")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *academicsApi) dashboard(ctx echo.Context) error {
	fc, err := api.scope(ctx)
	if err != nil {
		return err
	}
	stats, err := api.svc.DashboardStats(ctx.Request().Context(), fc)
	if err != nil {
		return errors.Wrap(err, "computing dashboard stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *academicsApi) institutions(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	institutions, err := api.svc.Institutions(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing institutions")
	}
	return ctx.JSON(http.StatusOK, access.FilterInstitutionsByRole(institutions, &usr))
}
