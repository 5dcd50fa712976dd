package scrape

// Selectors for the commits (signees) listing.
const (
	selNoResults      = ".ri-page__list-item.ri-page__list-item--no-results"
	selSigneeRow      = ".ri-page__list-item:not(.list-header)"
	selSigneeImage    = ".circle-image-block img"
	selSigneeStars    = ".ri-page__star-and-score .icon-starsolid.yellow"
	selSigneeName     = ".ri-page__name-link"
	selSigneePosition = ".position"
	selSigneeStatus   = ".status .commit-date"
	selSigneeSchool   = ".recruit .meta"
	selSigneeNatRank  = ".natrank"
)

// Selectors for the transfer portal listing. The portal's row markup
// differs from the commits page, including how filled stars are marked.
const (
	selTransferGroup      = ".transfer-group"
	selTransferRow        = ".transfer-player"
	selTransferImage      = ".avatar img"
	selTransferName       = "h3>a"
	selTransferPosition   = ".position"
	selTransferStars      = ".starContainer>svg"
	selTransferStarFill   = `[fill="#FBD032"]`
	selTransferStatus     = ".status"
	selTransferEntered    = ".entered-date-text"
	selTransferPrediction = ".transfer-prediction>a>img"
	selTransferPredictAny = ".transfer-prediction img"
	selTransferDest       = ".transfer-prediction>ul>li>a>img"
)

// Selectors for the roster listing and player profile pages.
const (
	selTeamNav       = ".teamtabnav_blk"
	selTeamNavLinks  = ".teamtabnav_blk ul li a"
	selRosterHeading = ".stats-page__heading"
	selRosterRows    = "tbody tr"
	selNameContainer = `[data-js="name-tbody-container"]`
	selDataContainer = `[data-js="data-tbody-container"]`
	selRosterStars   = ".icon-starsolid.yellow"
	selProfileImage  = ".jsonly"
)
