package handler

import (
	"github.com/gofiber/fiber/v2"

	"credvault/internal/model"
	"credvault/internal/service"
)

type (
	credentialHandler         = resourceHandler[model.Credential, model.CredentialCreate, model.CredentialUpdate]
	mailboxHandler            = resourceHandler[model.Mailbox, model.MailboxCreate, model.MailboxUpdate]
	areaHandler               = resourceHandler[model.Area, model.AreaCreate, model.AreaUpdate]
	personalDetailTypeHandler = resourceHandler[model.PersonalDetailType, model.PersonalDetailTypeCreate, model.PersonalDetailTypeUpdate]
	countryHandler            = resourceHandler[model.Country, model.CountryCreate, model.CountryUpdate]
	jobHuntCredentialHandler  = resourceHandler[model.JobHuntCredential, model.JobHuntCredentialCreate, model.JobHuntCredentialUpdate]
)

// credentialRoutes builds the /cred handlers.
func credentialRoutes(svc service.CredentialService, val *Validator) operations {
	h := &credentialHandler{svc: svc, val: val}
	return operations{
		create: createCredential(h),
		list:   listCredentials(h),
		find:   findCredential(h),
		update: updateCredential(h),
		remove: deleteCredential(h),
	}
}

// @Summary Create Credential
// @Tags credentials
// @Accept json
// @Produce json
// @Param body body model.CredentialCreate true "Credential"
// @Success 201 {object} model.Credential
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /cred/ [post]
func createCredential(h *credentialHandler) fiber.Handler { return h.create }

// @Summary List credentials
// @Tags credentials
// @Produce json
// @Success 200 {array} model.Credential
// @Failure 500 {object} errorPayload
// @Router /cred/ [get]
func listCredentials(h *credentialHandler) fiber.Handler { return h.list }

// @Summary Find Credential by id
// @Tags credentials
// @Produce json
// @Param key path string true "id"
// @Success 200 {object} model.Credential
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /cred/{key} [get]
func findCredential(h *credentialHandler) fiber.Handler { return h.find }

// @Summary Update supplied Credential fields
// @Tags credentials
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param body body model.CredentialUpdate true "fields to overwrite"
// @Success 200 {object} model.Credential
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /cred/{id} [put]
func updateCredential(h *credentialHandler) fiber.Handler { return h.update }

// @Summary Delete Credential
// @Tags credentials
// @Param id path string true "record id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /cred/{id} [delete]
func deleteCredential(h *credentialHandler) fiber.Handler { return h.delete }

// mailboxRoutes builds the /mailbox handlers.
func mailboxRoutes(svc service.MailboxService, val *Validator) operations {
	h := &mailboxHandler{svc: svc, val: val}
	return operations{
		create: createMailbox(h),
		list:   listMailboxes(h),
		find:   findMailbox(h),
		update: updateMailbox(h),
		remove: deleteMailbox(h),
	}
}

// @Summary Create Mailbox
// @Tags mailboxes
// @Accept json
// @Produce json
// @Param body body model.MailboxCreate true "Mailbox"
// @Success 201 {object} model.Mailbox
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /mailbox/ [post]
func createMailbox(h *mailboxHandler) fiber.Handler { return h.create }

// @Summary List mailboxes
// @Tags mailboxes
// @Produce json
// @Success 200 {array} model.Mailbox
// @Failure 500 {object} errorPayload
// @Router /mailbox/ [get]
func listMailboxes(h *mailboxHandler) fiber.Handler { return h.list }

// @Summary Find Mailbox by id or address
// @Tags mailboxes
// @Produce json
// @Param key path string true "id or address"
// @Success 200 {object} model.Mailbox
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /mailbox/{key} [get]
func findMailbox(h *mailboxHandler) fiber.Handler { return h.find }

// @Summary Update supplied Mailbox fields
// @Tags mailboxes
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param body body model.MailboxUpdate true "fields to overwrite"
// @Success 200 {object} model.Mailbox
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /mailbox/{id} [put]
func updateMailbox(h *mailboxHandler) fiber.Handler { return h.update }

// @Summary Delete Mailbox
// @Tags mailboxes
// @Param id path string true "record id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /mailbox/{id} [delete]
func deleteMailbox(h *mailboxHandler) fiber.Handler { return h.delete }

// areaRoutes builds the /area handlers.
func areaRoutes(svc service.AreaService, val *Validator) operations {
	h := &areaHandler{svc: svc, val: val}
	return operations{
		create: createArea(h),
		list:   listAreas(h),
		find:   findArea(h),
		update: updateArea(h),
		remove: deleteArea(h),
	}
}

// @Summary Create Area
// @Tags areas
// @Accept json
// @Produce json
// @Param body body model.AreaCreate true "Area"
// @Success 201 {object} model.Area
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /area/ [post]
func createArea(h *areaHandler) fiber.Handler { return h.create }

// @Summary List areas
// @Tags areas
// @Produce json
// @Success 200 {array} model.Area
// @Failure 500 {object} errorPayload
// @Router /area/ [get]
func listAreas(h *areaHandler) fiber.Handler { return h.list }

// @Summary Find Area by id or name
// @Tags areas
// @Produce json
// @Param key path string true "id or name"
// @Success 200 {object} model.Area
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /area/{key} [get]
func findArea(h *areaHandler) fiber.Handler { return h.find }

// @Summary Update supplied Area fields
// @Tags areas
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param body body model.AreaUpdate true "fields to overwrite"
// @Success 200 {object} model.Area
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /area/{id} [put]
func updateArea(h *areaHandler) fiber.Handler { return h.update }

// @Summary Delete Area
// @Tags areas
// @Param id path string true "record id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /area/{id} [delete]
func deleteArea(h *areaHandler) fiber.Handler { return h.delete }

// personalDetailTypeRoutes builds the /personal_detail_types handlers.
func personalDetailTypeRoutes(svc service.PersonalDetailTypeService, val *Validator) operations {
	h := &personalDetailTypeHandler{svc: svc, val: val}
	return operations{
		create: createPersonalDetailType(h),
		list:   listPersonalDetailTypes(h),
		find:   findPersonalDetailType(h),
		update: updatePersonalDetailType(h),
		remove: deletePersonalDetailType(h),
	}
}

// @Summary Create PersonalDetailType
// @Tags personal detail types
// @Accept json
// @Produce json
// @Param body body model.PersonalDetailTypeCreate true "PersonalDetailType"
// @Success 201 {object} model.PersonalDetailType
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /personal_detail_types/ [post]
func createPersonalDetailType(h *personalDetailTypeHandler) fiber.Handler { return h.create }

// @Summary List personal detail types
// @Tags personal detail types
// @Produce json
// @Success 200 {array} model.PersonalDetailType
// @Failure 500 {object} errorPayload
// @Router /personal_detail_types/ [get]
func listPersonalDetailTypes(h *personalDetailTypeHandler) fiber.Handler { return h.list }

// @Summary Find PersonalDetailType by id or detail
// @Tags personal detail types
// @Produce json
// @Param key path string true "id or detail"
// @Success 200 {object} model.PersonalDetailType
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /personal_detail_types/{key} [get]
func findPersonalDetailType(h *personalDetailTypeHandler) fiber.Handler { return h.find }

// @Summary Update supplied PersonalDetailType fields
// @Tags personal detail types
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param body body model.PersonalDetailTypeUpdate true "fields to overwrite"
// @Success 200 {object} model.PersonalDetailType
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /personal_detail_types/{id} [put]
func updatePersonalDetailType(h *personalDetailTypeHandler) fiber.Handler { return h.update }

// @Summary Delete PersonalDetailType
// @Tags personal detail types
// @Param id path string true "record id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /personal_detail_types/{id} [delete]
func deletePersonalDetailType(h *personalDetailTypeHandler) fiber.Handler { return h.delete }

// countryRoutes builds the /country handlers.
func countryRoutes(svc service.CountryService, val *Validator) operations {
	h := &countryHandler{svc: svc, val: val}
	return operations{
		create: createCountry(h),
		list:   listCountries(h),
		find:   findCountry(h),
		update: updateCountry(h),
		remove: deleteCountry(h),
	}
}

// @Summary Create Country
// @Tags countries
// @Accept json
// @Produce json
// @Param body body model.CountryCreate true "Country"
// @Success 201 {object} model.Country
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /country/ [post]
func createCountry(h *countryHandler) fiber.Handler { return h.create }

// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {array} model.Country
// @Failure 500 {object} errorPayload
// @Router /country/ [get]
func listCountries(h *countryHandler) fiber.Handler { return h.list }

// @Summary Find Country by id or name
// @Tags countries
// @Produce json
// @Param key path string true "id or name"
// @Success 200 {object} model.Country
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /country/{key} [get]
func findCountry(h *countryHandler) fiber.Handler { return h.find }

// @Summary Update supplied Country fields
// @Tags countries
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param body body model.CountryUpdate true "fields to overwrite"
// @Success 200 {object} model.Country
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /country/{id} [put]
func updateCountry(h *countryHandler) fiber.Handler { return h.update }

// @Summary Delete Country
// @Tags countries
// @Param id path string true "record id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /country/{id} [delete]
func deleteCountry(h *countryHandler) fiber.Handler { return h.delete }

// jobHuntCredentialRoutes builds the /job_hunt_cred handlers.
func jobHuntCredentialRoutes(svc service.JobHuntCredentialService, val *Validator) operations {
	h := &jobHuntCredentialHandler{svc: svc, val: val}
	return operations{
		create: createJobHuntCredential(h),
		list:   listJobHuntCredentials(h),
		find:   findJobHuntCredential(h),
		update: updateJobHuntCredential(h),
		remove: deleteJobHuntCredential(h),
	}
}

// @Summary Create JobHuntCredential
// @Tags job hunt credentials
// @Accept json
// @Produce json
// @Param body body model.JobHuntCredentialCreate true "JobHuntCredential"
// @Success 201 {object} model.JobHuntCredential
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/ [post]
func createJobHuntCredential(h *jobHuntCredentialHandler) fiber.Handler { return h.create }

// @Summary List job hunt credentials
// @Tags job hunt credentials
// @Produce json
// @Success 200 {array} model.JobHuntCredential
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/ [get]
func listJobHuntCredentials(h *jobHuntCredentialHandler) fiber.Handler { return h.list }

// @Summary Find JobHuntCredential by id
// @Tags job hunt credentials
// @Produce json
// @Param key path string true "id"
// @Success 200 {object} model.JobHuntCredential
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/{key} [get]
func findJobHuntCredential(h *jobHuntCredentialHandler) fiber.Handler { return h.find }

// @Summary Update supplied JobHuntCredential fields
// @Tags job hunt credentials
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param body body model.JobHuntCredentialUpdate true "fields to overwrite"
// @Success 200 {object} model.JobHuntCredential
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/{id} [put]
func updateJobHuntCredential(h *jobHuntCredentialHandler) fiber.Handler { return h.update }

// @Summary Delete JobHuntCredential
// @Tags job hunt credentials
// @Param id path string true "record id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/{id} [delete]
func deleteJobHuntCredential(h *jobHuntCredentialHandler) fiber.Handler { return h.delete }
