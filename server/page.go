package server

import (
	"net/http"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
)

type pageData struct {
	App       string
	Version   string
	CRT       bool
	Intensity int
	Degraded  bool
	Mode      string
	Keyword   string
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	state := s.engine.Snapshot()

	data := pageData{
		App:       constant.App,
		Version:   constant.Version,
		CRT:       s.options.CRT,
		Intensity: s.options.Intensity,
		Degraded:  s.options.Degraded,
		Mode:      state.Config.Mode.String(),
		Keyword:   state.Config.FixedTerm.OrEmpty(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, data); err != nil {
		log.Errorf("render page: %s", err)
	}
}

// CRT filter values scale linearly with the intensity v in [0, 1]:
// opacity v, contrast 1+0.5v, brightness 1-0.3v, saturate 1+0.5v.
const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.App}}</title>
<style>
:root{--crt-opacity:0.5;--crt-contrast:1.25;--crt-brightness:0.85;--crt-saturate:1.25}
html,body{margin:0;padding:0;height:100%;background:#11111b;color:#cdd6f4;font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif}
main{display:grid;grid-template-columns:1fr 320px;gap:16px;padding:16px;height:calc(100% - 32px);box-sizing:border-box}
#screen{position:relative;background:black;border-radius:15px;overflow:hidden}
#player,#player iframe{position:absolute;inset:0;width:100%;height:100%;border:0}
#crt{position:absolute;inset:0;pointer-events:none;display:none;border-radius:15px;
background:repeating-linear-gradient(transparent,transparent 2px,rgba(0,0,0,.1) 2px,rgba(0,0,0,.1) 4px),linear-gradient(rgba(0,255,0,.1),rgba(0,255,0,.15));
background-blend-mode:overlay;mix-blend-mode:screen;opacity:var(--crt-opacity)}
body.crt-on #crt{display:block}
body.crt-on #player iframe{filter:contrast(var(--crt-contrast)) brightness(var(--crt-brightness)) saturate(var(--crt-saturate))}
#message{position:absolute;inset:0;display:flex;align-items:center;justify-content:center;color:#a6e3a1;font-size:2rem;text-align:center}
aside{display:flex;flex-direction:column;gap:10px}
button,input{font:inherit;padding:6px 10px;border-radius:6px;border:1px solid #45475a;background:#1e1e2e;color:inherit}
button:hover{background:#313244;cursor:pointer}
.row{display:flex;gap:6px;align-items:center}
.muted{color:#7f849c;font-size:.9rem}
.warn{color:#f9e2af}
ol{padding-left:1.2rem;margin:0;overflow:auto}
li{margin-bottom:4px}
a{color:#89b4fa}
</style>
<body{{if .CRT}} class="crt-on"{{end}}>
<main>
  <section id="screen">
    <div id="player"></div>
    <div id="crt"></div>
    <div id="message">Press shuffle</div>
  </section>
  <aside>
    <h2>{{.App}} <span class="muted">v{{.Version}}</span></h2>
    {{if .Degraded}}<div class="warn">Word list unavailable, using the fallback term.</div>{{end}}
    <div class="row">
      <button id="shuffle">Shuffle</button>
      <button id="courageous" title="Switch to a different genre">Courageous</button>
    </div>
    <form id="keyword" class="row">
      <input name="term" placeholder="keyword (empty clears)" value="{{.Keyword}}" />
      <button type="submit">Set</button>
    </form>
    <div class="row">
      <button id="mode">Mode: <span id="mode-name">{{.Mode}}</span></button>
    </div>
    <div class="row">
      <button id="crt-toggle">Toggle CRT</button>
      <input id="crt-intensity" type="range" min="0" max="100" value="{{.Intensity}}" />
    </div>
    <div id="status" class="muted"></div>
    <h3>History</h3>
    <ol id="history" reversed></ol>
  </aside>
</main>
<script src="https://www.youtube.com/iframe_api"></script>
<script>
var player = null;
var pending = null;
var started = false;

function post(path, params) {
  return fetch(path, {method: "POST", body: new URLSearchParams(params || {})})
    .then(function (r) { return r.json(); })
    .then(function (msg) { if (msg.event === "error") { setStatus(msg.error); } return msg; })
    .catch(function (err) { setStatus(String(err)); });
}

function setStatus(text) { document.getElementById("status").textContent = text || ""; }

function setMessage(text) {
  var el = document.getElementById("message");
  el.textContent = text || "";
  el.style.display = text ? "flex" : "none";
}

function loadedID() {
  var data = player && player.getVideoData ? player.getVideoData() : null;
  return (data && data.video_id) || "";
}

function onPlayerError(event) { post("/api/player/error", {code: event.data, id: loadedID()}); }

function onPlayerStateChange(event) {
  if (event.data === YT.PlayerState.PLAYING && !started) {
    started = true;
    post("/api/player/started", {id: loadedID()});
  }
}

function onYouTubeIframeAPIReady() {
  player = new YT.Player("player", {
    playerVars: {autoplay: 1, controls: 1},
    events: {
      onReady: function () { if (pending) { play(pending); pending = null; } },
      onError: onPlayerError,
      onStateChange: onPlayerStateChange
    }
  });
}

function play(video) {
  if (!player || !player.loadVideoById) { pending = video; return; }
  started = false;
  setMessage("");
  player.loadVideoById(video.id);
}

function refreshHistory() {
  fetch("/api/history?limit=20").then(function (r) { return r.json(); }).then(function (entries) {
    var list = document.getElementById("history");
    list.innerHTML = "";
    entries.forEach(function (e) {
      var li = document.createElement("li");
      var a = document.createElement("a");
      a.href = "https://www.youtube.com/watch?v=" + encodeURIComponent(e.id);
      a.target = "_blank";
      a.textContent = e.title;
      li.appendChild(a);
      li.appendChild(document.createTextNode(" (" + e.query + ")"));
      list.appendChild(li);
    });
  });
}

function connect() {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = function (m) {
    var msg = JSON.parse(m.data);
    switch (msg.event) {
    case "play":
      setStatus(msg.query ? "query: " + msg.query + (msg.genre ? " [" + msg.genre + "]" : "") : "");
      play(msg.video);
      refreshHistory();
      break;
    case "empty":
      if (player && player.stopVideo) { player.stopVideo(); }
      setMessage("No videos found.");
      setStatus(msg.error || (msg.query ? "query: " + msg.query : ""));
      break;
    case "error":
      setStatus(msg.error);
      break;
    }
  };
  ws.onclose = function () { setTimeout(connect, 2000); };
}

function setCRTIntensity(value) {
  var v = value / 100;
  var root = document.documentElement.style;
  root.setProperty("--crt-opacity", v);
  root.setProperty("--crt-contrast", 1 + v * 0.5);
  root.setProperty("--crt-brightness", 1 - v * 0.3);
  root.setProperty("--crt-saturate", 1 + v * 0.5);
}

document.getElementById("shuffle").onclick = function () { post("/api/shuffle"); };
document.getElementById("courageous").onclick = function () { post("/api/shuffle", {avoid: "true"}); };
document.getElementById("keyword").onsubmit = function (e) {
  e.preventDefault();
  post("/api/keyword", {term: e.target.term.value});
};
document.getElementById("mode").onclick = function () {
  var current = document.getElementById("mode-name").textContent;
  var next = current === "free" ? "genre-cycle" : "free";
  post("/api/mode", {mode: next}).then(function (state) {
    if (state && state.mode) { document.getElementById("mode-name").textContent = state.mode; }
  });
};
document.getElementById("crt-toggle").onclick = function () { document.body.classList.toggle("crt-on"); };
document.getElementById("crt-intensity").oninput = function (e) { setCRTIntensity(e.target.value); };

setCRTIntensity({{.Intensity}});
refreshHistory();
connect();
</script>
</body>
</html>
`
