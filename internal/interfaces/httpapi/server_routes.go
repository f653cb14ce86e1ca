package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/fixtures", handler.GetFixtures)
	mux.HandleFunc("GET /api/matches/results", handler.GetResults)
	mux.HandleFunc("GET /api/matches/spotlight", handler.GetSpotlight)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatch)

	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)

	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /api/tables", handler.GetTable)

	mux.HandleFunc("GET /api/blogs", handler.ListBlogs)
	mux.HandleFunc("GET /api/blogs/{blogID}", handler.GetBlog)

	mux.HandleFunc("GET /api/highlights", handler.ListHighlights)
	mux.HandleFunc("GET /api/highlights/{highlightID}", handler.GetHighlight)

	mux.HandleFunc("GET /api/watchlive", handler.ListWatchlive)
	mux.HandleFunc("GET /api/watchlive/active", handler.GetActiveWatchlive)

	mux.HandleFunc("GET /api/sponsors", handler.ListSponsors)
	mux.HandleFunc("GET /api/sponsors/{sponsorID}", handler.GetSponsor)
}

// registerStaffRoutes wires every write behind the shared role policy:
// admin, editor, and viewer may create and update; only admin may delete.
func registerStaffRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	write := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireWriteRole(verifier, fn))
	}
	remove := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireDeleteRole(verifier, fn))
	}

	write("POST /api/matches", handler.CreateMatch)
	write("PATCH /api/matches/{matchID}", handler.UpdateMatch)
	remove("DELETE /api/matches/{matchID}", handler.DeleteMatch)

	write("POST /api/teams", handler.CreateTeam)
	write("PATCH /api/teams/{teamID}", handler.UpdateTeam)
	remove("DELETE /api/teams/{teamID}", handler.DeleteTeam)

	write("POST /api/players", handler.CreatePlayer)
	write("PATCH /api/players/{playerID}", handler.UpdatePlayer)
	remove("DELETE /api/players/{playerID}", handler.DeletePlayer)

	write("POST /api/tables", handler.CreateTableRow)
	write("PATCH /api/tables/{rowID}", handler.UpdateTableRow)
	remove("DELETE /api/tables/{rowID}", handler.DeleteTableRow)

	write("POST /api/blogs", handler.CreateBlog)
	write("PATCH /api/blogs/{blogID}", handler.UpdateBlog)
	remove("DELETE /api/blogs/{blogID}", handler.DeleteBlog)

	write("POST /api/highlights", handler.CreateHighlight)
	write("PATCH /api/highlights/{highlightID}", handler.UpdateHighlight)
	remove("DELETE /api/highlights/{highlightID}", handler.DeleteHighlight)
	remove("POST /api/highlights/refresh-stats", handler.RefreshHighlightStats)

	write("POST /api/watchlive", handler.CreateWatchlive)
	write("PATCH /api/watchlive/{streamID}", handler.UpdateWatchlive)
	remove("DELETE /api/watchlive/{streamID}", handler.DeleteWatchlive)

	write("POST /api/sponsors", handler.CreateSponsor)
	write("PATCH /api/sponsors/{sponsorID}", handler.UpdateSponsor)
	remove("DELETE /api/sponsors/{sponsorID}", handler.DeleteSponsor)

	write("POST /api/contacts", handler.CreateContact)
	write("GET /api/contacts", handler.ListContacts)
	write("GET /api/contacts/{contactID}", handler.GetContact)
	remove("DELETE /api/contacts/{contactID}", handler.DeleteContact)

	write("POST /api/subscribers", handler.CreateSubscriber)
	write("GET /api/subscribers", handler.ListSubscribers)
	remove("DELETE /api/subscribers/{subscriberID}", handler.DeleteSubscriber)
}
