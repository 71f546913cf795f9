package handler

import (
	"github.com/gofiber/fiber/v2"

	"credvault/internal/service"
)

// Services holds everything RegisterRoutes mounts. ApplicationFiles may be nil,
// in which case the job hunt file routes are not registered.
type Services struct {
	Credentials         service.CredentialService
	Mailboxes           service.MailboxService
	Areas               service.AreaService
	PersonalDetailTypes service.PersonalDetailTypeService
	Countries           service.CountryService
	JobHuntCredentials  service.JobHuntCredentialService
	ApplicationFiles    service.ApplicationFileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, svcs Services, val *Validator) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	mountResource(app.Group("/cred"), credentialRoutes(svcs.Credentials, val))
	mountResource(app.Group("/mailbox"), mailboxRoutes(svcs.Mailboxes, val))
	mountResource(app.Group("/area"), areaRoutes(svcs.Areas, val))
	mountResource(app.Group("/personal_detail_types"), personalDetailTypeRoutes(svcs.PersonalDetailTypes, val))
	mountResource(app.Group("/country"), countryRoutes(svcs.Countries, val))

	jobHunt := app.Group("/job_hunt_cred")
	if svcs.ApplicationFiles != nil {
		registerApplicationFiles(jobHunt, svcs.ApplicationFiles)
	}
	mountResource(jobHunt, jobHuntCredentialRoutes(svcs.JobHuntCredentials, val))
}
