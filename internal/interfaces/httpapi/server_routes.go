package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/enums", handler.ListEnums)
}

func registerTemplateRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
	// relation is "roster" (alias "player") or "squad".
	mux.HandleFunc("GET /v1/teams/{teamID}/{relation}", handler.ListTeamMembers)
	mux.HandleFunc("PUT /v1/teams/{teamID}/{relation}/{playerID}", handler.AddTeamMember)
	mux.HandleFunc("DELETE /v1/teams/{teamID}/{relation}/{playerID}", handler.RemoveTeamMember)
}

func registerInstanceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/player-instances", handler.ListPlayerInstances)
	mux.HandleFunc("POST /v1/player-instances", handler.CreatePlayerInstance)
	mux.HandleFunc("GET /v1/player-instances/{instanceID}", handler.GetPlayerInstance)
	mux.HandleFunc("DELETE /v1/player-instances/{instanceID}", handler.DeletePlayerInstance)
	mux.HandleFunc("PUT /v1/player-instances/{instanceID}/skills", handler.UpdatePlayerSkills)

	mux.HandleFunc("POST /v1/team-instances", handler.CreateTeamInstance)
	mux.HandleFunc("GET /v1/team-instances/{instanceID}", handler.GetTeamInstance)
	mux.HandleFunc("DELETE /v1/team-instances/{instanceID}", handler.DeleteTeamInstance)
	mux.HandleFunc("PUT /v1/team-instances/{instanceID}/stats", handler.UpdateTeamStats)
	mux.HandleFunc("GET /v1/team-instances/{instanceID}/{relation}", handler.ListTeamInstanceMembers)
	mux.HandleFunc("PUT /v1/team-instances/{instanceID}/{relation}/{playerInstanceID}", handler.AddTeamInstanceMember)
	mux.HandleFunc("DELETE /v1/team-instances/{instanceID}/{relation}/{playerInstanceID}", handler.RemoveTeamInstanceMember)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/result", handler.RecordMatchResult)
	mux.HandleFunc("GET /v1/matches/{matchID}/summary", handler.DescribeMatch)

	mux.HandleFunc("POST /v1/rounds", handler.CreateRound)
	mux.HandleFunc("GET /v1/rounds/{roundID}", handler.GetRound)
	mux.HandleFunc("DELETE /v1/rounds/{roundID}", handler.DeleteRound)
	mux.HandleFunc("GET /v1/rounds/{roundID}/matches", handler.ListRoundMatches)
	mux.HandleFunc("PUT /v1/rounds/{roundID}/matches/{matchID}", handler.AddRoundMatch)
	mux.HandleFunc("DELETE /v1/rounds/{roundID}/matches/{matchID}", handler.RemoveRoundMatch)

	mux.HandleFunc("POST /v1/seasons", handler.CreateSeason)
	mux.HandleFunc("POST /v1/seasons/setup", handler.SetupSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("PUT /v1/seasons/{seasonID}", handler.UpdateSeason)
	mux.HandleFunc("DELETE /v1/seasons/{seasonID}", handler.DeleteSeason)
	mux.HandleFunc("POST /v1/seasons/{seasonID}/complete", handler.CompleteSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/teams", handler.ListSeasonTeams)
	mux.HandleFunc("PUT /v1/seasons/{seasonID}/teams/{instanceID}", handler.AddSeasonTeam)
	mux.HandleFunc("DELETE /v1/seasons/{seasonID}/teams/{instanceID}", handler.RemoveSeasonTeam)
}

func registerManagerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/managers", handler.ListManagers)
	mux.HandleFunc("POST /v1/managers", handler.CreateManager)
	mux.HandleFunc("GET /v1/managers/{managerID}", handler.GetManager)
	mux.HandleFunc("PUT /v1/managers/{managerID}", handler.UpdateManager)
	mux.HandleFunc("DELETE /v1/managers/{managerID}", handler.DeleteManager)
	mux.HandleFunc("POST /v1/managers/{managerID}/season", handler.StartManagerSeason)
	mux.HandleFunc("POST /v1/managers/{managerID}/points", handler.AddManagerPoints)
	mux.HandleFunc("GET /v1/managers/{managerID}/seasons", handler.ListManagerSeasons)
}
