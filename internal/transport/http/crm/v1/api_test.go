package http_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TechRepair HTTP API", func() {
	BeforeEach(func() {
		dataDir = GinkgoT().TempDir()
		startServer(dataDir)
	})

	AfterEach(func() {
		stopServer()
	})

	Context("repairs", func() {
		It("creates a repair with defaults and links a customer", func() {
			payload := newRepairPayload()
			delete(payload, "urgency")

			id := createRepair(payload)

			By("reading it back")
			resp := do(http.MethodGet, "/api/repairs/"+id, nil)
			Expect(resp.code).To(Equal(http.StatusOK))

			rep := resp.json()
			Expect(rep["status"]).To(Equal("new"))
			Expect(rep["urgency"]).To(Equal("low"))
			Expect(rep["source"]).To(Equal("repair_landing"))
			Expect(rep).To(HaveKeyWithValue("completion_date", BeNil()))
			Expect(rep).To(HaveKeyWithValue("technician", BeNil()))

			By("finding exactly one customer with one repair")
			list := do(http.MethodGet, "/api/customers", nil).json()
			Expect(list["total"]).To(BeEquivalentTo(1))

			cust := list["items"].([]any)[0].(map[string]any)
			Expect(cust["phone"]).To(Equal(payload["phone"]))

			details := do(http.MethodGet, "/api/customers/"+cust["id"].(string), nil).json()
			Expect(details["repairs_count"]).To(BeEquivalentTo(1))
		})

		It("lists newest first with paging fields", func() {
			first := createRepair(newRepairPayload())
			second := createRepair(newRepairPayload())

			list := do(http.MethodGet, "/api/repairs", nil).json()
			Expect(list["total"]).To(BeEquivalentTo(2))
			Expect(list["page"]).To(BeEquivalentTo(1))
			Expect(list["per_page"]).To(BeEquivalentTo(50))
			Expect(list["timestamp"]).NotTo(BeEmpty())

			items := list["items"].([]any)
			Expect(items[0].(map[string]any)["id"]).To(Equal(second))
			Expect(items[1].(map[string]any)["id"]).To(Equal(first))
		})

		It("rejects bad payloads", func() {
			Expect(do(http.MethodPost, "/api/repairs", "").code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodPost, "/api/repairs", "{not json").code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodPost, "/api/repairs", map[string]any{"firstName": "NoContact"}).code).
				To(Equal(http.StatusBadRequest))

			resp := do(http.MethodPost, "/api/repairs", map[string]any{"phone": "1", "urgency": "asap"})
			Expect(resp.code).To(Equal(http.StatusBadRequest))
			Expect(resp.json()).To(HaveKey("error"))
		})

		It("walks the status lifecycle", func() {
			id := createRepair(newRepairPayload())

			resp := do(http.MethodPut, "/api/repairs/"+id+"/status", map[string]any{"status": "completed"})
			Expect(resp.code).To(Equal(http.StatusOK))
			Expect(resp.json()["message"]).To(Equal("status changed to 'completed'"))

			rep := do(http.MethodGet, "/api/repairs/"+id, nil).json()
			Expect(rep["status"]).To(Equal("completed"))
			Expect(rep["completion_date"]).NotTo(BeNil())
			completedAt := rep["completion_date"]

			By("moving back to in-progress keeps the completion date")
			Expect(do(http.MethodPut, "/api/repairs/"+id+"/status", map[string]any{"status": "in-progress"}).code).
				To(Equal(http.StatusOK))
			rep = do(http.MethodGet, "/api/repairs/"+id, nil).json()
			Expect(rep["status"]).To(Equal("in-progress"))
			Expect(rep["completion_date"]).To(Equal(completedAt))

			By("rejecting unknown and missing statuses")
			Expect(do(http.MethodPut, "/api/repairs/"+id+"/status", map[string]any{"status": "archived"}).code).
				To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodPut, "/api/repairs/"+id+"/status", map[string]any{}).code).
				To(Equal(http.StatusBadRequest))
		})

		It("updates allowed fields only", func() {
			id := createRepair(newRepairPayload())
			before := do(http.MethodGet, "/api/repairs/"+id, nil).json()

			resp := do(http.MethodPut, "/api/repairs/"+id, map[string]any{
				"technician": "Oleg",
				"id":         "hijacked",
				"timestamp":  "1999-01-01T00:00:00",
				"source":     "elsewhere",
			})
			Expect(resp.code).To(Equal(http.StatusOK))

			item := resp.json()["item"].(map[string]any)
			Expect(item["id"]).To(Equal(id))
			Expect(item["technician"]).To(Equal("Oleg"))
			Expect(item["timestamp"]).To(Equal(before["timestamp"]))
			Expect(item["source"]).To(Equal(before["source"]))
			Expect(item["updated_at"]).NotTo(BeNil())
		})

		It("returns 404 for unknown ids", func() {
			Expect(do(http.MethodGet, "/api/repairs/nope", nil).code).To(Equal(http.StatusNotFound))
			Expect(do(http.MethodPut, "/api/repairs/nope", map[string]any{"technician": "x"}).code).
				To(Equal(http.StatusNotFound))
			Expect(do(http.MethodPut, "/api/repairs/nope/status", map[string]any{"status": "new"}).code).
				To(Equal(http.StatusNotFound))
			Expect(do(http.MethodDelete, "/api/repairs/nope", nil).code).To(Equal(http.StatusNotFound))
		})

		It("deletes and persists to disk", func() {
			keep := createRepair(newRepairPayload())
			gone := createRepair(newRepairPayload())

			Expect(do(http.MethodDelete, "/api/repairs/"+gone, nil).code).To(Equal(http.StatusOK))

			data, err := os.ReadFile(filepath.Join(dataDir, "repairs.json"))
			Expect(err).NotTo(HaveOccurred())

			var file struct {
				Items []struct {
					ID string `json:"id"`
				} `json:"items"`
				Total       int    `json:"total"`
				LastUpdated string `json:"last_updated"`
			}
			Expect(json.Unmarshal(data, &file)).To(Succeed())
			Expect(file.Total).To(Equal(1))
			Expect(file.Items[0].ID).To(Equal(keep))
			Expect(file.LastUpdated).NotTo(BeEmpty())

			By("restarting on the same directory")
			stopServer()
			startServer(dataDir)
			Expect(do(http.MethodGet, "/api/repairs/"+keep, nil).code).To(Equal(http.StatusOK))
			Expect(do(http.MethodGet, "/api/repairs/"+gone, nil).code).To(Equal(http.StatusNotFound))
		})

		It("deduplicates customers under concurrent submissions", func() {
			payload := newRepairPayload()

			var wg sync.WaitGroup
			for range 10 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					createRepair(payload)
				}()
			}
			wg.Wait()

			Expect(st.Repairs.Len()).To(Equal(10))
			Expect(st.Customers.Len()).To(Equal(1))
		})
	})

	Context("stats", func() {
		It("counts by status, urgency and day", func() {
			a := createRepair(newRepairPayload())
			b := createRepair(newRepairPayload())
			createRepair(newRepairPayload())

			do(http.MethodPut, "/api/repairs/"+a+"/status", map[string]any{"status": "completed"})
			do(http.MethodPut, "/api/repairs/"+b+"/status", map[string]any{"status": "cancelled"})

			stats := do(http.MethodGet, "/api/stats", nil).json()
			Expect(stats["total_repairs"]).To(BeEquivalentTo(3))
			Expect(stats["new_repairs"]).To(BeEquivalentTo(1))
			Expect(stats["in_progress"]).To(BeEquivalentTo(0))
			Expect(stats["completed_repairs"]).To(BeEquivalentTo(1))
			Expect(stats["urgent_repairs"]).To(BeEquivalentTo(3))
			Expect(stats["today_repairs"]).To(BeEquivalentTo(3))
			Expect(stats).To(HaveKey("timestamp"))
		})
	})

	Context("inventory", func() {
		It("filters low stock items", func() {
			low := do(http.MethodPost, "/api/inventory", map[string]any{"name": "Battery", "qty": 1, "min_qty": 3})
			Expect(low.code).To(Equal(http.StatusOK))
			do(http.MethodPost, "/api/inventory", map[string]any{"name": "Screen", "qty": 10, "min_qty": 2})

			Expect(do(http.MethodGet, "/api/inventory", nil).json()["total"]).To(BeEquivalentTo(2))

			filtered := do(http.MethodGet, "/api/inventory?low_stock=true", nil).json()
			Expect(filtered["total"]).To(BeEquivalentTo(1))
			Expect(filtered["items"].([]any)[0].(map[string]any)["name"]).To(Equal("Battery"))

			Expect(do(http.MethodPost, "/api/inventory", map[string]any{"name": "X", "qty": -1}).code).
				To(Equal(http.StatusBadRequest))
		})
	})

	Context("appointments", func() {
		It("creates, updates and deletes", func() {
			resp := do(http.MethodPost, "/api/appointments", map[string]any{
				"start":    "2024-05-20T10:00",
				"customer": "Ivan",
				"title":    "Diagnostics",
			})
			Expect(resp.code).To(Equal(http.StatusOK))
			item := resp.json()["item"].(map[string]any)
			Expect(item["status"]).To(Equal("planned"))
			id := item["id"].(string)

			upd := do(http.MethodPut, "/api/appointments/"+id, map[string]any{"status": "done"})
			Expect(upd.json()["item"].(map[string]any)["status"]).To(Equal("done"))

			Expect(do(http.MethodDelete, "/api/appointments/"+id, nil).code).To(Equal(http.StatusOK))
			Expect(do(http.MethodGet, "/api/appointments/"+id, nil).code).To(Equal(http.StatusNotFound))
		})
	})

	Context("settings", func() {
		It("merges objects and rejects everything else", func() {
			Expect(do(http.MethodGet, "/api/settings", nil).json()).To(BeEmpty())

			resp := do(http.MethodPut, "/api/settings", map[string]any{"company": "TechRepair"})
			Expect(resp.code).To(Equal(http.StatusOK))
			Expect(resp.json()["settings"]).To(HaveKeyWithValue("company", "TechRepair"))

			do(http.MethodPut, "/api/settings", map[string]any{"phone": "+7 999"})

			got := do(http.MethodGet, "/api/settings", nil).json()
			Expect(got).To(HaveKeyWithValue("company", "TechRepair"))
			Expect(got).To(HaveKeyWithValue("phone", "+7 999"))
			Expect(got).To(HaveKey("updated_at"))

			Expect(do(http.MethodPut, "/api/settings", "[1, 2]").code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodPut, "/api/settings", "null").code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("plumbing", func() {
		It("answers health, metrics and CORS preflight", func() {
			health := do(http.MethodGet, "/health", nil)
			Expect(health.code).To(Equal(http.StatusOK))
			Expect(string(health.body)).To(Equal("SERVING"))

			createRepair(newRepairPayload())
			metrics := do(http.MethodGet, "/metrics", nil)
			Expect(string(metrics.body)).
				To(MatchRegexp(`techrepair_http_requests_total\{code="200",method="POST",route="/api/repairs/?"\} 1`))

			Expect(do(http.MethodOptions, "/api/repairs", nil).code).To(Equal(http.StatusOK))
		})
	})
})
