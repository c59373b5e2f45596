package fs

// LookupPrelude is the JavaScript helper prepended to the bundle when assets
// were staged. It installs a global resolveAsset(name) exactly once and tries
// an ordered list of candidate directories: beside the running executable,
// under the current working directory, the packager's snapshot mount, and
// beside the bundle source during development. First existing match wins.
const LookupPrelude = `(function(){"use strict";
if(globalThis.__nodepackAssets)return;
var path=require("path"),fs=require("fs");
var candidates=[
  function(){return path.join(path.dirname(process.execPath),"assets");},
  function(){return path.join(process.cwd(),"assets");},
  function(){return path.join("/snapshot","assets");},
  function(){return path.join(__dirname,"assets");}
];
globalThis.__nodepackAssets={
  resolve:function(name){
    for(var i=0;i<candidates.length;i++){
      var dir=candidates[i]();
      try{
        var p=path.join(dir,name);
        if(fs.existsSync(p))return p;
      }catch(e){}
    }
    throw new Error("asset not found: "+name);
  }
};
globalThis.resolveAsset=globalThis.__nodepackAssets.resolve;
})();
`
