package preview

import (
	"html/template"
	"io"
)

type pageData struct {
	Title string
	Body  template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>body{font-family:system-ui,sans-serif;margin:2rem}</style>
</head>
<body>
<div id="vbind-root">{{.Body}}</div>
<script>` + clientScript + `</script>
</body>
</html>
`))

func writePage(w io.Writer, title string, body string) error {
	return pageTemplate.Execute(w, pageData{Title: title, Body: template.HTML(body)})
}

// clientScript applies msgpack patch batches from /ws to #vbind-root.
const clientScript = `
(function() {
    'use strict';

    var OP = {TEXT: 1, SET_ATTR: 2, REMOVE_ATTR: 3, INSERT: 4, SET_STYLE: 5, REMOVE_STYLE: 6, CREATE: 7};
    var root = document.getElementById('vbind-root');
    var nodes = {};
    var seq = 0;
    var reconnectDelay = 1000;

    function decode(buf) {
        var view = new DataView(buf), pos = 0, text = new TextDecoder();

        function str(n) {
            var s = text.decode(new Uint8Array(buf, pos, n));
            pos += n;
            return s;
        }
        function map(n) {
            var m = {};
            for (var i = 0; i < n; i++) { var k = value(); m[k] = value(); }
            return m;
        }
        function arr(n) {
            var a = [];
            for (var i = 0; i < n; i++) a.push(value());
            return a;
        }
        function value() {
            var b = view.getUint8(pos++), v;
            if (b <= 0x7f) return b;
            if (b >= 0xe0) return b - 0x100;
            if ((b & 0xf0) === 0x80) return map(b & 0x0f);
            if ((b & 0xf0) === 0x90) return arr(b & 0x0f);
            if ((b & 0xe0) === 0xa0) return str(b & 0x1f);
            switch (b) {
            case 0xc0: return null;
            case 0xc2: return false;
            case 0xc3: return true;
            case 0xcc: return view.getUint8(pos++);
            case 0xcd: v = view.getUint16(pos); pos += 2; return v;
            case 0xce: v = view.getUint32(pos); pos += 4; return v;
            case 0xcf: v = Number(view.getBigUint64(pos)); pos += 8; return v;
            case 0xd9: v = view.getUint8(pos++); return str(v);
            case 0xda: v = view.getUint16(pos); pos += 2; return str(v);
            case 0xdb: v = view.getUint32(pos); pos += 4; return str(v);
            case 0xdc: v = view.getUint16(pos); pos += 2; return arr(v);
            case 0xdd: v = view.getUint32(pos); pos += 4; return arr(v);
            case 0xde: v = view.getUint16(pos); pos += 2; return map(v);
            case 0xdf: v = view.getUint32(pos); pos += 4; return map(v);
            }
            throw new Error('vbind: unsupported msgpack byte 0x' + b.toString(16));
        }
        return value();
    }

    function setText(el, s) {
        var first = el.firstChild;
        if (first && first.nodeType === 3) {
            if (s === '') el.removeChild(first); else first.data = s;
        } else if (s !== '') {
            el.insertBefore(document.createTextNode(s), first);
        }
    }

    function apply(p) {
        var el = nodes[p.h];
        switch (p.o) {
        case OP.CREATE:
            el = document.createElement(p.k);
            el.setAttribute('data-hid', p.h);
            nodes[p.h] = el;
            return;
        case OP.INSERT:
            (p.p ? nodes[p.p] : root).appendChild(el);
            return;
        }
        if (!el) return;
        switch (p.o) {
        case OP.TEXT: setText(el, p.v || ''); break;
        case OP.SET_ATTR: el.setAttribute(p.k, p.v || ''); break;
        case OP.REMOVE_ATTR: el.removeAttribute(p.k); break;
        case OP.SET_STYLE: el.style.setProperty(p.k, p.v || ''); break;
        case OP.REMOVE_STYLE: el.style.removeProperty(p.k); break;
        }
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');
        ws.binaryType = 'arraybuffer';

        ws.onopen = function() { reconnectDelay = 1000; };
        ws.onmessage = function(e) {
            var batch = decode(e.data);
            if (batch.r) {
                root.textContent = '';
                nodes = {};
            } else if (batch.s <= seq) {
                return;
            }
            seq = batch.s;
            (batch.p || []).forEach(apply);
        };
        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, 30000);
                connect();
            }, reconnectDelay);
        };
        ws.onerror = function() { ws.close(); };
    }

    connect();
})();
`
