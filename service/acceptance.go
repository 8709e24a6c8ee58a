package service

import (
	"bytes"
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type JSON = map[string]interface{}

// Acceptance runs the HTTP scenarios against an empty grid.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List roles", func(a *biff.A) {
		resp := apiRequest("GET", "/roles").Do()
		Save(resp, "List roles", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []string{
			"name", "role", "department", "salary", "isActive",
			"hireDate", "status", "remoteWork", "contractType",
		})
	})

	a.Alternative("Load sample data", func(a *biff.A) {
		resp := apiRequest("POST", "/items:loadSampleData").
			WithBodyJson(JSON{"rows": 12}).Do()
		Save(resp, "Load sample data", `
			Replaces every item with generated employees. The body is optional,
			by default the configured amount of sample rows is generated.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"total": 12})

		resp = apiRequest("GET", "/view").Do()
		biff.AssertEqualJson(resp.BodyJson().(JSON)["count"], 12)
		biff.AssertEqualJson(resp.BodyJson().(JSON)["activeCount"], 8)
	})

	a.Alternative("Add items", func(a *biff.A) {

		bob := JSON{
			"name": "Bob", "role": "Developer", "department": "Engineering",
			"salary": 50000, "isActive": true, "hireDate": "2021-03-01",
			"status": "active", "remoteWork": false, "contractType": "Full-time",
		}
		ann := JSON{
			"name": "Ann", "role": "Designer", "department": "Design",
			"salary": 70000, "isActive": false, "hireDate": "2019-11-20",
			"status": "pending", "remoteWork": true, "contractType": "Part-time",
		}
		cid := JSON{
			"name": "Cid", "role": "QA", "department": "QA",
			"salary": 50000, "isActive": true, "hireDate": "2023-06-15",
			"status": "inactive", "remoteWork": false, "contractType": "Intern",
		}

		resp := apiRequest("POST", "/items").WithBodyJson(bob).Do()
		Save(resp, "Add item", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		created := resp.BodyJson().(JSON)
		biff.AssertEqualJson(created["position"], 0)
		biff.AssertEqual(created["name"], "Bob")
		biff.AssertEqual(created["hireDate"], "2021-03-01")
		biff.AssertNotNil(created["id"])

		apiRequest("POST", "/items").WithBodyJson(ann).Do()
		apiRequest("POST", "/items").WithBodyJson(cid).Do()

		a.Alternative("List items", func(a *biff.A) {
			resp := apiRequest("GET", "/items").Do()
			Save(resp, "List items", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Bob", "Ann", "Cid"})
		})

		a.Alternative("Get item", func(a *biff.A) {
			resp := apiRequest("GET", "/items/1").Do()
			Save(resp, "Get item", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			item := resp.BodyJson().(JSON)
			delete(item, "id")
			expected := JSON{"position": 1}
			for k, v := range ann {
				expected[k] = v
			}
			biff.AssertEqualJson(item, expected)
		})

		a.Alternative("Get item out of range", func(a *biff.A) {
			resp := apiRequest("GET", "/items/3").Do()
			Save(resp, "Get item - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Get item with a bad position", func(a *biff.A) {
			resp := apiRequest("GET", "/items/first").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Add item with missing fields", func(a *biff.A) {
			resp := apiRequest("POST", "/items").
				WithBodyJson(JSON{"name": "Zed"}).Do()
			Save(resp, "Add item - missing fields", `
				Every field is required when adding an item.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertNotNil(resp.BodyJson().(JSON)["error"])

			resp = apiRequest("GET", "/items").Do()
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Bob", "Ann", "Cid"})
		})

		a.Alternative("Update item", func(a *biff.A) {
			resp := apiRequest("POST", "/items/0:updateItem").
				WithBodyJson(JSON{
					"name":       "Bobby",
					"role":       "Manager",
					"department": "Management",
				}).Do()
			Save(resp, "Update item", `
				Overwrites only the fields present in the body.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			item := resp.BodyJson().(JSON)
			biff.AssertEqual(item["name"], "Bobby")
			biff.AssertEqual(item["role"], "Manager")
			biff.AssertEqualJson(item["salary"], 50000)
		})

		a.Alternative("Update item with a wrong type", func(a *biff.A) {
			resp := apiRequest("POST", "/items/0:updateItem").
				WithBodyJson(JSON{"salary": "a lot"}).Do()
			Save(resp, "Update item - wrong type", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)

			resp = apiRequest("GET", "/items/0").Do()
			biff.AssertEqualJson(resp.BodyJson().(JSON)["salary"], 50000)
		})

		a.Alternative("Update item with an unknown field", func(a *biff.A) {
			resp := apiRequest("POST", "/items/0:updateItem").
				WithBodyJson(JSON{"age": 33}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Remove item", func(a *biff.A) {
			resp := apiRequest("POST", "/items/1:removeItem").Do()
			Save(resp, "Remove item", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/items").Do()
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Bob", "Cid"})
		})

		a.Alternative("Remove item out of range", func(a *biff.A) {
			resp := apiRequest("POST", "/items/7:removeItem").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/items").Do()
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Bob", "Ann", "Cid"})
		})

		a.Alternative("Move item", func(a *biff.A) {
			resp := apiRequest("POST", "/items/0:moveItem").
				WithBodyJson(JSON{"to": 2}).Do()
			Save(resp, "Move item", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/items").Do()
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Ann", "Cid", "Bob"})
		})

		a.Alternative("Default view", func(a *biff.A) {
			resp := apiRequest("GET", "/view").Do()
			Save(resp, "Get view", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"sortRole":    "name",
				"sortOrder":   "ascending",
				"filterText":  "",
				"count":       3,
				"total":       3,
				"activeCount": 2,
			})

			resp = apiRequest("GET", "/view/rows").Do()
			biff.AssertEqual(rowNames(resp.BodyString()), []string{"Ann", "Bob", "Cid"})
		})

		a.Alternative("Sort by salary", func(a *biff.A) {
			resp := apiRequest("POST", "/view:sortByRole").
				WithBodyJson(JSON{"role": "salary", "order": "ascending"}).Do()
			Save(resp, "Sort by role", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJson().(JSON)["sortRole"], "salary")

			resp = apiRequest("GET", "/view/rows").Do()
			Save(resp, "List rows", `
				Streams the projected rows as newline delimited JSON.
			`)
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(rowNames(resp.BodyString()), []string{"Bob", "Cid", "Ann"})

			a.Alternative("Filter text", func(a *biff.A) {
				resp := apiRequest("POST", "/view:setFilterText").
					WithBodyJson(JSON{"text": "AN"}).Do()
				Save(resp, "Set filter text", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson().(JSON)["count"], 1)

				resp = apiRequest("GET", "/view/rows/0").Do()
				Save(resp, "Get row", ``)
				row := resp.BodyJson().(JSON)
				biff.AssertEqualJson(row["row"], 0)
				biff.AssertEqualJson(row["position"], 1)
				biff.AssertEqual(row["name"], "Ann")

				resp = apiRequest("GET", "/view/rows/1").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

				a.Alternative("Clear filters", func(a *biff.A) {
					resp := apiRequest("POST", "/view:clearFilters").Do()
					Save(resp, "Clear filters", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqualJson(resp.BodyJson().(JSON)["count"], 3)
				})
			})

			a.Alternative("Move row while sorted", func(a *biff.A) {
				resp := apiRequest("POST", "/view/rows/0:moveRow").
					WithBodyJson(JSON{"to": 2}).Do()
				Save(resp, "Move row - unsupported", `
					Rows can only be moved while the view shows items in their own
					order, without filter text nor query.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusConflict)

				resp = apiRequest("GET", "/items").Do()
				biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Bob", "Ann", "Cid"})
			})

			a.Alternative("Bad order", func(a *biff.A) {
				resp := apiRequest("POST", "/view:sortByRole").
					WithBodyJson(JSON{"role": "salary", "order": "sideways"}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})
		})

		a.Alternative("Toggle sort twice", func(a *biff.A) {
			resp := apiRequest("POST", "/view:toggleSort").
				WithBodyJson(JSON{"role": "name"}).Do()
			Save(resp, "Toggle sort", ``)

			biff.AssertEqual(resp.BodyJson().(JSON)["sortOrder"], "descending")

			resp = apiRequest("GET", "/view/rows").Do()
			biff.AssertEqual(rowNames(resp.BodyString()), []string{"Cid", "Bob", "Ann"})

			resp = apiRequest("POST", "/view:toggleSort").
				WithBodyJson(JSON{"role": "name"}).Do()
			biff.AssertEqual(resp.BodyJson().(JSON)["sortOrder"], "ascending")
		})

		a.Alternative("Remove row under filter", func(a *biff.A) {
			apiRequest("POST", "/view:setFilterText").
				WithBodyJson(JSON{"text": "cid"}).Do()

			resp := apiRequest("POST", "/view/rows/0:removeRow").Do()
			Save(resp, "Remove row", `
				Removes the item shown at that row of the view.
			`)
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/items").Do()
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Bob", "Ann"})
		})

		a.Alternative("Move row without sort", func(a *biff.A) {
			apiRequest("POST", "/view:sortByRole").
				WithBodyJson(JSON{"role": ""}).Do()

			resp := apiRequest("POST", "/view/rows/0:moveRow").
				WithBodyJson(JSON{"to": 2}).Do()
			Save(resp, "Move row", ``)
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/items").Do()
			biff.AssertEqual(itemNames(resp.BodyJson()), []string{"Ann", "Cid", "Bob"})
		})

		a.Alternative("Query", func(a *biff.A) {
			resp := apiRequest("POST", "/view:setQuery").
				WithBodyJson(JSON{
					"query": JSON{
						"salary": JSON{"$gt": 60000},
					},
				}).Do()
			Save(resp, "Set query", `
				Filters the view with a structured query. It is combined with the
				filter text, rows must match both.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson().(JSON)["count"], 1)

			resp = apiRequest("GET", "/view/rows").Do()
			biff.AssertEqual(rowNames(resp.BodyString()), []string{"Ann"})
		})

		a.Alternative("Invalid query", func(a *biff.A) {
			resp := apiRequest("POST", "/view:setQuery").
				WithBodyJson(JSON{
					"query": JSON{
						"salary": JSON{"$nope": 1},
					},
				}).Do()
			Save(resp, "Set query - invalid", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Malformed JSON", func(a *biff.A) {
		resp := apiRequest("POST", "/items").
			WithBodyString(`{"name": `).Do()
		Save(resp, "Add item - malformed", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})
}

func itemNames(body interface{}) []string {
	result := []string{}
	items, _ := body.([]interface{})
	for _, item := range items {
		result = append(result, item.(JSON)["name"].(string))
	}
	return result
}

func rowNames(body string) []string {
	result := []string{}
	d := jsontext.NewDecoder(bytes.NewBufferString(body))
	for {
		row := struct {
			Name string `json:"name"`
		}{}
		err := json2.UnmarshalDecode(d, &row)
		if err != nil {
			break
		}
		result = append(result, row.Name)
	}
	return result
}
