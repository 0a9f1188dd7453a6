package services

// ServiceContainer bundles the service facades for injection into the HTTP
// layer.
type ServiceContainer struct {
	User       UserSvcFacade
	Token      TokenSvcFacade
	Account    AccountSvcFacade
	Ledger     LedgerSvcFacade
	Bill       BillSvcFacade
	Reporting  ReportingSvcFacade
	Rates      RatesSvcFacade
	Assistant  AssistantSvcFacade
	Preference PreferenceSvcFacade
}
