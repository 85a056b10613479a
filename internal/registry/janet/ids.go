package janet

// Element ids of the registry pages.
const (
	idUserName    = "MainContent_Login1_UserName"
	idPassword    = "MainContent_Login1_Password"
	idLoginButton = "MainContent_Login1_LoginButton"

	idMenuTickets = "commonActionsMenuLogin_ListPendingTickets"
	idMenuDomains = "commonActionsMenuLogin_ListDomains"

	idTicketType     = "MainContent_TicketTypeChoice"
	idTicketDomain   = "MainContent_DomainFilterInput"
	idTicketFilter   = "MainContent_FilterSubmit"
	idTicketList     = "MainContent_TicketListView"
	idTicketPageInfo = "MainContent_TicketListView_CurrentPageLabel"
	idSubmissionText = "MainContent_SubmissionText"

	idDomainFilter  = "MainContent_tbDomainNames"
	idShowReverse   = "MainContent_ShowReverseDelegatedDomains"
	idDomainSubmit  = "MainContent_btnFilter"
	fmtDomainButton = "MainContent_DomainListView_ViewDomainNumber%d_%d"

	idNameServers    = "MainContent_nameServersTab"
	idDSDisplay      = "MainContent_DsKeysDisplay"
	prefixRegistrant = "MainContent_Reg"
	idModifyButton   = "MainContent_ModifyDomainButton"

	idSecondaries        = "MainContent_NumberOfSecServers"
	idPrimaryName        = "MainContent_PrimeNameserverName"
	idPrimaryAddress     = "MainContent_PrimeNameserverIp"
	fmtSecondaryName     = "MainContent_SecAddress%d"
	fmtSecondaryAddress  = "MainContent_SecIp%d"
	idDSIcon             = "ModifyDsKeyIcon"
	idDSText             = "MainContent_DsKeyTabContainer_DsPasteTab_DsKeyText"
	prefixFormRegistrant = "MainContent_Registrant_Reg"
	idConfirm            = "MainContent_ConfirmRequest"

	suffixModificationTime = "ModificationTime"
	suffixModificationDate = "ModificationDateCalendar"

	ticketTypeModification = "Modification"
	pendingTicketsPage     = "ViewPendingTickets"
)

// The delegation form and the registrant form name the time fields differently.
//
//nolint:gochecknoglobals
var modificationPrefixes = [...]string{"MainContent_", "MainContent_ModificationDate_"}
