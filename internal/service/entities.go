package service

import (
	"credvault/internal/model"
	"credvault/internal/repository"
)

type (
	CredentialService         = ResourceService[model.Credential, model.CredentialUpdate]
	MailboxService            = ResourceService[model.Mailbox, model.MailboxUpdate]
	AreaService               = ResourceService[model.Area, model.AreaUpdate]
	PersonalDetailTypeService = ResourceService[model.PersonalDetailType, model.PersonalDetailTypeUpdate]
	CountryService            = ResourceService[model.Country, model.CountryUpdate]
	JobHuntCredentialService  = ResourceService[model.JobHuntCredential, model.JobHuntCredentialUpdate]
)

// Credentials have no alternate key.
func NewCredentialService(repo repository.DocumentRepository[model.Credential]) CredentialService {
	return NewResource[model.Credential, *model.Credential, model.CredentialUpdate](
		Descriptor{Entity: "Credential", Lookups: []Lookup{ByID()}}, repo)
}

func NewMailboxService(repo repository.DocumentRepository[model.Mailbox]) MailboxService {
	return NewResource[model.Mailbox, *model.Mailbox, model.MailboxUpdate](
		Descriptor{Entity: "Mailbox", Lookups: []Lookup{ByID(), ByField("name", "address")}}, repo)
}

func NewAreaService(repo repository.DocumentRepository[model.Area]) AreaService {
	return NewResource[model.Area, *model.Area, model.AreaUpdate](
		Descriptor{Entity: "Area", Lookups: []Lookup{ByID(), ByField("name", "name")}}, repo)
}

func NewPersonalDetailTypeService(repo repository.DocumentRepository[model.PersonalDetailType]) PersonalDetailTypeService {
	return NewResource[model.PersonalDetailType, *model.PersonalDetailType, model.PersonalDetailTypeUpdate](
		Descriptor{Entity: "Personal detail type", Lookups: []Lookup{ByID(), ByField("name", "detail")}}, repo)
}

func NewCountryService(repo repository.DocumentRepository[model.Country]) CountryService {
	return NewResource[model.Country, *model.Country, model.CountryUpdate](
		Descriptor{Entity: "Country", Lookups: []Lookup{ByID(), ByField("name", "name")}}, repo)
}

func NewJobHuntCredentialService(repo repository.DocumentRepository[model.JobHuntCredential]) JobHuntCredentialService {
	return NewResource[model.JobHuntCredential, *model.JobHuntCredential, model.JobHuntCredentialUpdate](
		Descriptor{Entity: "Job hunt credential", Lookups: []Lookup{ByID()}}, repo)
}
