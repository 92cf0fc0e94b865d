package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"petclinic/internal/router"
)

const (
	adminUser = "admin"
	adminPass = "admin-secret"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		AdminUser:     adminUser,
		AdminPassword: adminPass,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_OwnerLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Lista vacía => 404 (contrato del API, no 200 [])
	{
		st, _, _ := doReq(t, ts.URL, "GET", "/api/owners", adminUser, adminPass, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 listing empty owners, got %d", st)
		}
	}

	// 2) Alta de owner
	ownerID := createEntity(t, ts.URL, "/api/owners", map[string]any{
		"firstName": "George",
		"lastName":  "Franklin",
		"address":   "110 W. Liberty St.",
		"city":      "Madison",
		"telephone": "6085551023",
	})

	// 3) Get por id
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/api/owners/"+itoa(ownerID), adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d body=%s", st, string(body))
		}
		var o struct {
			LastName string `json:"lastName"`
		}
		_ = json.Unmarshal(body, &o)
		if o.LastName != "Franklin" {
			t.Fatalf("expected lastName Franklin, got %q", o.LastName)
		}
	}

	// 4) Búsqueda por apellido (match exacto)
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/api/owners/lastname/Franklin", adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 owners by lastname, got %d body=%s", st, string(body))
		}
		st, _, _ = doReq(t, ts.URL, "GET", "/api/owners/lastname/Nadie", adminUser, adminPass, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown lastname, got %d", st)
		}
	}

	// 5) Update => 204, y el get refleja el cambio
	{
		st, body, _ := doReq(t, ts.URL, "PUT", "/api/owners/"+itoa(ownerID), adminUser, adminPass, map[string]any{
			"firstName": "George",
			"lastName":  "Franklin",
			"address":   "200 E. Main St.",
			"city":      "Madison",
			"telephone": "6085551023",
		})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 update owner, got %d body=%s", st, string(body))
		}

		st, body, _ = doReq(t, ts.URL, "GET", "/api/owners/"+itoa(ownerID), adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get after update, got %d", st)
		}
		var o struct {
			Address string `json:"address"`
		}
		_ = json.Unmarshal(body, &o)
		if o.Address != "200 E. Main St." {
			t.Fatalf("expected updated address, got %q", o.Address)
		}
	}

	// 6) Delete => 204 y el siguiente get => 404
	{
		st, _, _ := doReq(t, ts.URL, "DELETE", "/api/owners/"+itoa(ownerID), adminUser, adminPass, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete owner, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "GET", "/api/owners/"+itoa(ownerID), adminUser, adminPass, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 get deleted owner, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "DELETE", "/api/owners/"+itoa(ownerID), adminUser, adminPass, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}
	}
}

func TestHTTP_EndToEnd_PetsAndVisits(t *testing.T) {
	ts := newTestServer(t)

	typeID := createEntity(t, ts.URL, "/api/pettypes", map[string]any{"name": "dog"})
	ownerID := createEntity(t, ts.URL, "/api/owners", map[string]any{
		"firstName": "Eduardo",
		"lastName":  "Rodriquez",
		"address":   "2693 Commerce St.",
		"city":      "McFarland",
		"telephone": "6085558763",
	})

	// 1) Pet apuntando a un owner inexistente => 400 con header errors
	{
		st, _, hdr := doReq(t, ts.URL, "POST", "/api/pets", adminUser, adminPass, map[string]any{
			"name":    "Rosy",
			"type":    map[string]any{"id": typeID, "name": "dog"},
			"ownerId": 9999,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 pet with unknown owner, got %d", st)
		}
		if errs := hdr.Get("errors"); !bytes.Contains([]byte(errs), []byte("ownerId")) {
			t.Fatalf("expected errors header naming ownerId, got %q", errs)
		}
	}

	// 2) Alta válida
	petID := createEntity(t, ts.URL, "/api/pets", map[string]any{
		"name":      "Rosy",
		"birthDate": "2011/04/17",
		"type":      map[string]any{"id": typeID, "name": "dog"},
		"ownerId":   ownerID,
	})

	// 3) El get devuelve el pet con su type resuelto desde storage
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/api/pets/"+itoa(petID), adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var p struct {
			BirthDate string `json:"birthDate"`
			Type      struct {
				Name string `json:"name"`
			} `json:"type"`
		}
		_ = json.Unmarshal(body, &p)
		if p.Type.Name != "dog" {
			t.Fatalf("expected resolved type dog, got %q", p.Type.Name)
		}
		if p.BirthDate != "2011/04/17" {
			t.Fatalf("expected birthDate 2011/04/17, got %q", p.BirthDate)
		}
	}

	// 4) Atajo /api/pets/pettypes: vacío sería 200 [], acá trae el type
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/api/pets/pettypes", adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet types shortcut, got %d", st)
		}
		var types []struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &types)
		if len(types) != 1 || types[0].Name != "dog" {
			t.Fatalf("expected [dog], got %s", string(body))
		}
	}

	// 5) Visita del pet
	visitID := createEntity(t, ts.URL, "/api/visits", map[string]any{
		"date":        "2013/01/01",
		"description": "rabies shot",
		"petId":       petID,
	})

	{
		st, body, _ := doReq(t, ts.URL, "GET", "/api/pets/"+itoa(petID)+"/visits", adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 visits of pet, got %d", st)
		}
		var vs []struct {
			Description string `json:"description"`
		}
		_ = json.Unmarshal(body, &vs)
		if len(vs) != 1 || vs[0].Description != "rabies shot" {
			t.Fatalf("expected [rabies shot], got %s", string(body))
		}
	}

	// 6) Visita con petId inexistente => 400
	{
		st, _, hdr := doReq(t, ts.URL, "POST", "/api/visits", adminUser, adminPass, map[string]any{
			"date":        "2013/01/01",
			"description": "ghost visit",
			"petId":       9999,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 visit with unknown pet, got %d", st)
		}
		if errs := hdr.Get("errors"); !bytes.Contains([]byte(errs), []byte("petId")) {
			t.Fatalf("expected errors header naming petId, got %q", errs)
		}
	}

	// 7) Borrar el pet arrastra sus visitas
	{
		st, _, _ := doReq(t, ts.URL, "DELETE", "/api/pets/"+itoa(petID), adminUser, adminPass, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "GET", "/api/visits/"+itoa(visitID), adminUser, adminPass, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 visit after pet delete, got %d", st)
		}
	}
}

func TestHTTP_EndToEnd_VetsAndSpecialties(t *testing.T) {
	ts := newTestServer(t)

	radiology := createEntity(t, ts.URL, "/api/specialties", map[string]any{"name": "radiology"})
	surgery := createEntity(t, ts.URL, "/api/specialties", map[string]any{"name": "surgery"})

	vetID := createEntity(t, ts.URL, "/api/vets", map[string]any{
		"firstName": "Linda",
		"lastName":  "Douglas",
		"specialties": []map[string]any{
			{"id": radiology, "name": "radiology"},
			{"id": surgery, "name": "surgery"},
		},
	})

	// Specialty desconocida en el set => 400
	{
		st, _, hdr := doReq(t, ts.URL, "PUT", "/api/vets/"+itoa(vetID), adminUser, adminPass, map[string]any{
			"firstName":   "Linda",
			"lastName":    "Douglas",
			"specialties": []map[string]any{{"id": 9999, "name": "nope"}},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 vet with unknown specialty, got %d", st)
		}
		if errs := hdr.Get("errors"); !bytes.Contains([]byte(errs), []byte("specialties")) {
			t.Fatalf("expected errors header naming specialties, got %q", errs)
		}
	}

	// Borrar una specialty la despega del vet sin borrarlo
	{
		st, _, _ := doReq(t, ts.URL, "DELETE", "/api/specialties/"+itoa(surgery), adminUser, adminPass, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete specialty, got %d", st)
		}

		st, body, _ := doReq(t, ts.URL, "GET", "/api/vets/"+itoa(vetID), adminUser, adminPass, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get vet after specialty delete, got %d", st)
		}
		var v struct {
			Specialties []struct {
				Name string `json:"name"`
			} `json:"specialties"`
		}
		_ = json.Unmarshal(body, &v)
		if len(v.Specialties) != 1 || v.Specialties[0].Name != "radiology" {
			t.Fatalf("expected only radiology left, got %s", string(body))
		}
	}
}

func TestHTTP_Validation_RejectsEmptyName(t *testing.T) {
	ts := newTestServer(t)

	st, body, hdr := doReq(t, ts.URL, "POST", "/api/pettypes", adminUser, adminPass, map[string]any{
		"name": "",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", st)
	}
	// El body es la entidad recibida; el detalle va en el header errors.
	if errs := hdr.Get("errors"); !bytes.Contains([]byte(errs), []byte("name")) {
		t.Fatalf("expected errors header naming name, got %q", errs)
	}
	var pt struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &pt); err != nil {
		t.Fatalf("expected entity echo body, got %s", string(body))
	}
}

func TestHTTP_AuthAndRoles(t *testing.T) {
	ts := newTestServer(t)

	// 1) Sin credenciales => 401 con challenge
	{
		res, err := http.Get(ts.URL + "/api/owners")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 without credentials, got %d", res.StatusCode)
		}
		if res.Header.Get("WWW-Authenticate") == "" {
			t.Fatal("expected WWW-Authenticate challenge")
		}
	}

	// 2) Credenciales inválidas => 401
	{
		st, _, _ := doReq(t, ts.URL, "GET", "/api/owners", adminUser, "wrong", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with bad password, got %d", st)
		}
	}

	// 3) Usuario sin roles => 400
	{
		st, _, _ := doReq(t, ts.URL, "POST", "/api/users", adminUser, adminPass, map[string]any{
			"username": "norole",
			"password": "pw",
			"enabled":  true,
			"roles":    []any{},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 user without roles, got %d", st)
		}
	}

	// 4) Alta de usuario solo-vet; la password no vuelve en el body
	{
		st, body, _ := doReq(t, ts.URL, "POST", "/api/users", adminUser, adminPass, map[string]any{
			"username": "vet1",
			"password": "vet-pass",
			"enabled":  true,
			"roles":    []map[string]any{{"name": "VET_ADMIN"}},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
		}
		if bytes.Contains(body, []byte("vet-pass")) {
			t.Fatalf("password must not be echoed, body=%s", string(body))
		}
	}

	// 5) El vet puede tocar /api/vets pero no /api/owners ni /api/users
	{
		st, _, _ := doReq(t, ts.URL, "GET", "/api/vets", "vet1", "vet-pass", nil)
		if st != http.StatusNotFound { // lista vacía, pero pasó el rol
			t.Fatalf("expected 404 empty vets as vet1, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "GET", "/api/owners", "vet1", "vet-pass", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 owners as vet1, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "POST", "/api/users", "vet1", "vet-pass", map[string]any{
			"username": "x", "password": "y", "roles": []map[string]any{{"name": "ADMIN"}},
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 users as vet1, got %d", st)
		}
	}

	// 6) pettypes: lectura para ambos admins, escritura solo vet
	{
		st, _, _ := doReq(t, ts.URL, "POST", "/api/pettypes", "vet1", "vet-pass", map[string]any{"name": "cat"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 pettype as vet1, got %d", st)
		}

		st, body, _ := doReq(t, ts.URL, "POST", "/api/users", adminUser, adminPass, map[string]any{
			"username": "owner1",
			"password": "owner-pass",
			"enabled":  true,
			"roles":    []map[string]any{{"name": "OWNER_ADMIN"}},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create owner1, got %d body=%s", st, string(body))
		}

		st, _, _ = doReq(t, ts.URL, "GET", "/api/pettypes", "owner1", "owner-pass", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pettypes read as owner1, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "POST", "/api/pettypes", "owner1", "owner-pass", map[string]any{"name": "bird"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 pettype write as owner1, got %d", st)
		}
	}

	// 7) Usuario deshabilitado no entra
	{
		st, _, _ := doReq(t, ts.URL, "POST", "/api/users", adminUser, adminPass, map[string]any{
			"username": "off",
			"password": "off-pass",
			"enabled":  false,
			"roles":    []map[string]any{{"name": "ADMIN"}},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create disabled user, got %d", st)
		}
		st, _, _ = doReq(t, ts.URL, "GET", "/api/owners", "off", "off-pass", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 disabled user, got %d", st)
		}
	}
}

func createEntity(t *testing.T, baseURL, path string, payload map[string]any) int {
	t.Helper()

	st, body, _ := doReq(t, baseURL, "POST", path, adminUser, adminPass, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, user, pass string, body any) (int, []byte, http.Header) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(user, pass)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody, res.Header
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
