package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manojvns/billdesk/models"
)

const employeeSelectQuery = `SELECT id, name, role, phone, salary, joined_date, created_at, updated_at FROM employees`

func scanEmployee(scanner interface{ Scan(...any) error }) (models.Employee, error) {
	var e models.Employee
	err := scanner.Scan(&e.ID, &e.Name, &e.Role, &e.Phone, &e.Salary, &e.JoinedDate,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func getEmployeeByID(id int) (models.Employee, error) {
	return scanEmployee(DB.QueryRow(employeeSelectQuery+" WHERE id = ?", id))
}

// ListEmployees lists all employees
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Employee}
// @Router       /employees [get]
// @Security     BasicAuth
func ListEmployees(w http.ResponseWriter, r *http.Request) {
	rows, err := DB.Query(employeeSelectQuery + " ORDER BY name")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		employees = append(employees, e)
	}
	writeJSON(w, http.StatusOK, employees)
}

// GetEmployee retrieves a single employee by ID
// @Summary      Get employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  Response{data=models.Employee}
// @Failure      404  {object}  Response{error=string}
// @Router       /employees/{id} [get]
// @Security     BasicAuth
func GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	e, err := getEmployeeByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "employee not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// CreateEmployee creates a new employee
// @Summary      Create employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        employee  body      models.EmployeeInput  true  "Employee contents"
// @Success      201       {object}  Response{data=models.Employee}
// @Failure      400       {object}  Response{error=string}
// @Router       /employees [post]
// @Security     BasicAuth
func CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var input models.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var id int
	err := DB.QueryRow(`INSERT INTO employees (name, role, phone, salary, joined_date)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		input.Name, input.Role, input.Phone, input.Salary.String(), input.JoinedDate).Scan(&id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	e, err := getEmployeeByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created employee: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// UpdateEmployee updates an existing employee
// @Summary      Update employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id        path      int                   true  "Employee ID"
// @Param        employee  body      models.EmployeeInput  true  "Updated contents"
// @Success      200       {object}  Response{data=models.Employee}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Router       /employees/{id} [put]
// @Security     BasicAuth
func UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := DB.Exec(`UPDATE employees SET name = ?, role = ?, phone = ?, salary = ?,
		joined_date = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		input.Name, input.Role, input.Phone, input.Salary.String(), input.JoinedDate, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	e, err := getEmployeeByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated employee: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// DeleteEmployee deletes an employee
// @Summary      Delete employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /employees/{id} [delete]
// @Security     BasicAuth
func DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	res, err := DB.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
