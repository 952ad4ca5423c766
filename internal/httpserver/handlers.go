package httpserver

import (
	"io"
	"net/http"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/report"
	"github.com/gin-gonic/gin"
)

func (srv *Server) healthCheck(c *gin.Context) {
	ok(c, gin.H{"status": "alive", "service": config.AppName})
}

func (srv *Server) startTimer(c *gin.Context) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	name, err := taskName(req.TaskName)
	if err != nil {
		badRequest(c, err)
		return
	}
	id, err := srv.repo.StartTimer(c.Request.Context(), name)
	if err != nil {
		srv.fail(c, "start", err)
		return
	}
	ok(c, startResp{ID: id})
}

func (srv *Server) stopTimer(c *gin.Context) {
	stopped, err := srv.repo.StopTimer(c.Request.Context())
	if err != nil {
		srv.fail(c, "stop", err)
		return
	}
	ok(c, successResp{Success: stopped})
}

func (srv *Server) switchTask(c *gin.Context) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	name, err := taskName(req.TaskName)
	if err != nil {
		badRequest(c, err)
		return
	}
	id, switched, err := srv.repo.SwitchTask(c.Request.Context(), name)
	if err != nil {
		srv.fail(c, "switch", err)
		return
	}
	ok(c, startResp{ID: id, Switched: switched})
}

func (srv *Server) timerStatus(c *gin.Context) {
	active, err := srv.repo.ActiveTimer(c.Request.Context())
	if err != nil {
		srv.fail(c, "status", err)
		return
	}
	ok(c, srv.newStatusResp(active))
}

func (srv *Server) entriesForDate(c *gin.Context) {
	day, err := srv.queryDate(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	entries, err := srv.repo.EntriesForDate(c.Request.Context(), day)
	if err != nil {
		srv.fail(c, "entries", err)
		return
	}
	ok(c, newIntervalsResp(entries))
}

func (srv *Server) entriesForRange(c *gin.Context) {
	r, err := srv.queryRange(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	entries, err := srv.repo.EntriesForRange(c.Request.Context(), r.From, r.To)
	if err != nil {
		srv.fail(c, "entries range", err)
		return
	}
	ok(c, newIntervalsResp(entries))
}

func (srv *Server) getEntry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	entry, err := srv.repo.GetInterval(c.Request.Context(), id)
	if err != nil {
		srv.fail(c, "get entry", err)
		return
	}
	ok(c, newIntervalResp(entry))
}

func (srv *Server) updateEntry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	name, start, end, err := req.parse()
	if err != nil {
		badRequest(c, err)
		return
	}
	updated, err := srv.repo.UpdateInterval(c.Request.Context(), id, name, start, end)
	if err != nil {
		srv.fail(c, "update entry", err)
		return
	}
	ok(c, successResp{Success: updated})
}

func (srv *Server) deleteEntry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	deleted, err := srv.repo.DeleteInterval(c.Request.Context(), id)
	if err != nil {
		srv.fail(c, "delete entry", err)
		return
	}
	ok(c, successResp{Success: deleted})
}

func (srv *Server) statsForDate(c *gin.Context) {
	day, err := srv.queryDate(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	stats, err := srv.repo.StatsForDate(c.Request.Context(), day)
	if err != nil {
		srv.fail(c, "stats", err)
		return
	}
	ok(c, newStatsResp(stats))
}

func (srv *Server) statsForRange(c *gin.Context) {
	r, err := srv.queryRange(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	stats, err := srv.repo.StatsForRange(c.Request.Context(), r.From, r.To)
	if err != nil {
		srv.fail(c, "stats range", err)
		return
	}
	ok(c, newStatsResp(stats))
}

func (srv *Server) recentTasks(c *gin.Context) {
	days, err := srv.queryWindow(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	names, err := srv.repo.RecentTaskNames(c.Request.Context(), days)
	if err != nil {
		srv.fail(c, "recent tasks", err)
		return
	}
	ok(c, names)
}

func (srv *Server) trackSummary(c *gin.Context) {
	r, err := srv.queryRange(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	entries, err := srv.repo.EntriesForRange(c.Request.Context(), r.From, r.To)
	if err != nil {
		srv.fail(c, "summary", err)
		return
	}
	ok(c, gin.H{
		"from":    r.From.Format(config.DateLayout),
		"to":      r.To.Format(config.DateLayout),
		"summary": report.BuildTrackSummary(entries),
	})
}

func (srv *Server) exportIntervals(c *gin.Context) {
	r, err := srv.queryRange(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	data, err := srv.repo.ExportIntervals(c.Request.Context(), r.From, r.To)
	if err != nil {
		srv.fail(c, "export", err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (srv *Server) importIntervals(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	n, err := srv.repo.ImportIntervals(c.Request.Context(), data)
	if err != nil {
		srv.fail(c, "import", err)
		return
	}
	ok(c, gin.H{"imported": n})
}
