package cmd

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/sebastian/constants"
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/pipeline"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default $SEBASTIAN_PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves transforms over HTTP",
	Long:  `Serves POST /transform and POST /lilypond, both taking a JSON pipeline document.`,
	Run: func(cmd *cobra.Command, args []string) {
		if port == "" {
			port = constants.GetPort()
		}
		serve(":" + port)
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func decodeAndRun(w http.ResponseWriter, r *http.Request) (model.TransformResponse, bool) {
	var input model.TransformRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return model.TransformResponse{}, false
	}

	seq, err := pipeline.Run(&input)
	if err != nil {
		slog.Warn("pipeline failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return model.TransformResponse{}, false
	}
	if seq == nil {
		seq = []model.Point{}
	}
	return model.TransformResponse{Points: seq}, true
}

func HandleTransform(w http.ResponseWriter, r *http.Request) {
	res, ok := decodeAndRun(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleLilypond(w http.ResponseWriter, r *http.Request) {
	res, ok := decodeAndRun(w, r)
	if !ok {
		return
	}
	line, err := renderLilypond(res.Points)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(line + "\n"))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transform", HandleTransform).Methods("POST")
	router.HandleFunc("/lilypond", HandleLilypond).Methods("POST")
	router.Use(logRequests)
	return cors.Default().Handler(router)
}

func serve(addr string) {
	slog.Info("listening", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
