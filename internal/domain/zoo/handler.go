package zoo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"animal-zoo/internal/domain/animals"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/residents", func(rr chi.Router) {
		rr.Post("/", admitHandler(svc))
		rr.Get("/", listResidentsHandler(svc))
		rr.Get("/{residentID}", getResidentHandler(svc))
		rr.Post("/{residentID}/actions", performHandler(svc))
	})

	r.Get("/census", censusHandler(svc))
	r.Get("/concert", concertHandler(svc))
}

// admitRequest es el cuerpo para admitir un animal vía la fábrica.
type admitRequest struct {
	Type string `json:"type" enums:"dog,cat,bird"`
	// Argumentos posicionales del constructor:
	// dog [name, age, breed], cat [name, age, color], bird [name, age, wingspan]
	Args []any `json:"args" swaggertype:"array,object"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// residentResponse representa un residente. Los campos propios de cada
// variante solo aparecen en esa variante.
type residentResponse struct {
	ID          string       `json:"id"`
	Type        animals.Kind `json:"type"`
	Name        string       `json:"name"`
	Age         int          `json:"age"`
	Health      int          `json:"health"`
	Description string       `json:"description"`
	Breed       *string      `json:"breed,omitempty"`
	Tricks      []string     `json:"tricks,omitempty"`
	Color       *string      `json:"color,omitempty"`
	Lives       *int         `json:"lives,omitempty"`
	Wingspan    *float64     `json:"wingspan,omitempty"`
	CanFly      *bool        `json:"can_fly,omitempty"`
	AdmittedAt  time.Time    `json:"admitted_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type performRequest struct {
	Action Action `json:"action" enums:"sound,move,eat,describe,learn_trick,perform_trick,tricks,purr,lose_life,fly,set_fly_ability"`
	Food   string `json:"food,omitempty"`
	Trick  string `json:"trick,omitempty"`
	CanFly *bool  `json:"can_fly,omitempty"`
}

type performResponse struct {
	Message  string           `json:"message"`
	Resident residentResponse `json:"resident"`
}

type censusResponse struct {
	Dogs  int `json:"dogs"`
	Cats  int `json:"cats"`
	Birds int `json:"birds"`
	Total int `json:"total"`
}

// admitHandler godoc
// @Summary Admitir un animal
// @Description Crea un animal con la fábrica (type case-insensitive) y lo registra como residente. Un type desconocido devuelve 400 con "Unknown animal type: <type>" y, si hay uno parecido, un hint.
// @Tags residents
// @Accept json
// @Produce json
// @Param payload body admitRequest true "Tipo y argumentos del constructor"
// @Success 201 {object} residentResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {string} string "internal error"
// @Router /residents [post]
func admitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admitRequest
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		res, err := svc.Admit(r.Context(), req.Type, req.Args...)
		if err != nil {
			switch {
			case errors.Is(err, animals.ErrUnknownKind):
				resp := errorResponse{Error: err.Error()}
				if k, ok := animals.SuggestKind(req.Type); ok {
					resp.Hint = fmt.Sprintf("did you mean %s?", k)
				}
				writeJSON(w, http.StatusBadRequest, resp)
			case errors.Is(err, animals.ErrInvalidArgs):
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toResidentResponse(res))
	}
}

// listResidentsHandler godoc
// @Summary Listar residentes
// @Description Lista todos los residentes por orden de admisión.
// @Tags residents
// @Produce json
// @Success 200 {array} residentResponse
// @Failure 500 {string} string "internal error"
// @Router /residents [get]
func listResidentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]residentResponse, 0, len(items))
		for _, res := range items {
			out = append(out, toResidentResponse(res))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getResidentHandler godoc
// @Summary Ver un residente
// @Tags residents
// @Produce json
// @Param residentID path string true "ID del residente"
// @Success 200 {object} residentResponse
// @Failure 404 {string} string "resident not found"
// @Router /residents/{residentID} [get]
func getResidentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetByID(r.Context(), chi.URLParam(r, "residentID"))
		if err != nil {
			http.Error(w, "resident not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResidentResponse(res))
	}
}

// performHandler godoc
// @Summary Ejecutar una acción sobre un residente
// @Description Acciones comunes (sound, move, eat, describe) o propias de la variante (learn_trick, perform_trick, tricks, purr, lose_life, fly, set_fly_ability). Un truco desconocido o un gato sin vidas no son errores: vienen en message.
// @Tags residents
// @Accept json
// @Produce json
// @Param residentID path string true "ID del residente"
// @Param payload body performRequest true "Acción y argumentos"
// @Success 200 {object} performResponse
// @Failure 400 {string} string "invalid json / argumentos faltantes"
// @Failure 404 {string} string "resident not found"
// @Failure 422 {string} string "la variante no soporta la acción"
// @Failure 500 {string} string "internal error"
// @Router /residents/{residentID}/actions [post]
func performHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req performRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out, err := svc.Perform(r.Context(), chi.URLParam(r, "residentID"), Command{
			Action: req.Action,
			Food:   req.Food,
			Trick:  req.Trick,
			CanFly: req.CanFly,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "resident not found", http.StatusNotFound)
			case errors.Is(err, ErrUnsupportedAction):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, performResponse{
			Message:  out.Message,
			Resident: toResidentResponse(out.Resident),
		})
	}
}

// censusHandler godoc
// @Summary Censo por variante
// @Tags zoo
// @Produce json
// @Success 200 {object} censusResponse
// @Failure 500 {string} string "internal error"
// @Router /census [get]
func censusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Census(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := censusResponse{
			Dogs:  c[animals.KindDog],
			Cats:  c[animals.KindCat],
			Birds: c[animals.KindBird],
		}
		resp.Total = resp.Dogs + resp.Cats + resp.Birds

		writeJSON(w, http.StatusOK, resp)
	}
}

// concertHandler godoc
// @Summary Concierto
// @Description Cada residente hace su sonido, en orden de admisión.
// @Tags zoo
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /concert [get]
func concertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sounds, err := svc.Concert(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sounds)
	}
}

func toResidentResponse(res Resident) residentResponse {
	a := res.Animal
	out := residentResponse{
		ID:          res.ID,
		Type:        a.Kind(),
		Name:        a.Name(),
		Age:         a.Age(),
		Health:      a.Health(),
		Description: a.String(),
		AdmittedAt:  res.AdmittedAt,
		UpdatedAt:   res.UpdatedAt,
	}

	a.Accept(animals.VisitorFuncs{
		Dog: func(d *animals.Dog) {
			breed := d.Breed()
			out.Breed = &breed
			out.Tricks = d.Tricks()
		},
		Cat: func(c *animals.Cat) {
			color, lives := c.Color(), c.Lives()
			out.Color = &color
			out.Lives = &lives
		},
		Bird: func(b *animals.Bird) {
			ws, canFly := b.Wingspan(), b.CanFly()
			out.Wingspan = &ws
			out.CanFly = &canFly
		},
	})

	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (zoo/journal)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
