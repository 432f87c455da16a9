package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/d4j3y2k/keyboy/card"
	"github.com/d4j3y2k/keyboy/chord"
	"github.com/d4j3y2k/keyboy/constants"
	"github.com/d4j3y2k/keyboy/db"
	"github.com/d4j3y2k/keyboy/model"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not parse request body"})
		return
	}

	res := chord.Analyze(input.Notes)
	if res == nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "notes must not be empty"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleCreateCard(w http.ResponseWriter, r *http.Request) {
	var input model.CreateCardRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not parse request body"})
		return
	}

	res := chord.Analyze(input.Notes)
	if res == nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "notes must not be empty"})
		return
	}

	c := card.New(input.Notes, *res)
	db.SaveCard(c)
	writeJSON(w, http.StatusCreated, c)
}

func HandleGetCard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, ok := db.GetCard(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no card with id " + id})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/cards", HandleCreateCard).Methods("POST")
	router.HandleFunc("/cards/{id}", HandleGetCard).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
